package requests

import (
	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/xinjiayu/rxlite"
)

// Handler answers streamed requests and tallies the outcomes.
type Handler struct {
	logger zerolog.Logger

	handled   atomic.Int64
	failed    atomic.Int64
	completed atomic.Int64
	last      atomic.Int64
}

// NewHandler returns a Handler logging through logger.
func NewHandler(logger zerolog.Logger) *Handler {
	return &Handler{logger: logger}
}

// HandleRequest handles one request. Handling always succeeds.
func (h *Handler) HandleRequest(req Request) Status {
	h.handled.Inc()
	h.last.Store(StatusOK)
	h.logger.Info().
		Str("method", req.Method).
		Str("host", req.Host).
		Str("path", req.Path).
		Str("id", req.Params.ID).
		Int("status", StatusOK).
		Msg("request handled")
	return Status{Code: StatusOK}
}

// HandleError maps a stream error onto an internal server error.
func (h *Handler) HandleError(err error) Status {
	h.failed.Inc()
	h.last.Store(StatusInternalServerError)
	h.logger.Error().Err(err).Int("status", StatusInternalServerError).Msg("request stream failed")
	return Status{Code: StatusInternalServerError}
}

// HandleComplete records the end of the request stream.
func (h *Handler) HandleComplete() {
	h.completed.Inc()
	h.logger.Info().Msg("complete")
}

// Handlers adapts h to an rxlite handler set, discarding statuses.
func (h *Handler) Handlers() rxlite.Handlers[Request] {
	return rxlite.Handlers[Request]{
		Next:     func(req Request) { h.HandleRequest(req) },
		Error:    func(err error) { h.HandleError(err) },
		Complete: h.HandleComplete,
	}
}

// Summary is a snapshot of handler counters.
type Summary struct {
	Handled    int64
	Failed     int64
	Completed  int64
	LastStatus int64
}

// Summary returns the current counters.
func (h *Handler) Summary() Summary {
	return Summary{
		Handled:    h.handled.Load(),
		Failed:     h.failed.Load(),
		Completed:  h.completed.Load(),
		LastStatus: h.last.Load(),
	}
}
