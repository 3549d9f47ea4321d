package requests

import (
	"github.com/pkg/errors"

	"github.com/xinjiayu/rxlite"
)

// ErrInjected is the failure emitted by Stream once failAfter requests have
// been delivered.
var ErrInjected = errors.New("injected request failure")

// Stream returns an Observable over reqs. With failAfter < 0 it behaves like
// rxlite.From; otherwise it errors after delivering failAfter requests.
func Stream(reqs []Request, failAfter int, options ...rxlite.Option) *rxlite.Observable[Request] {
	if failAfter < 0 {
		return rxlite.From(reqs, options...)
	}

	return rxlite.New(func(observer rxlite.Observer[Request]) rxlite.Teardown {
		delivered := 0
		for _, req := range reqs {
			if delivered == failAfter {
				break
			}
			observer.Next(req)
			delivered++
		}
		observer.Error(errors.Wrapf(ErrInjected, "after %d of %d requests", delivered, len(reqs)))
		return nil
	}, options...)
}
