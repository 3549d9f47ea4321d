package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xinjiayu/rxlite"
	"github.com/xinjiayu/rxlite/internal/logger"
	"github.com/xinjiayu/rxlite/internal/requests"
)

const envPrefix = "RXLITE"

type options struct {
	LogLevel  string
	LogType   string
	Host      string
	FailAfter int
	Repeat    int
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "rxlite-demo",
		Short: "Stream the sample requests through an rxlite Observable",
		Long: `Subscribes to an Observable built from the sample request list, hands each
request to the request handler, then unsubscribes.`,
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options{
				LogLevel:  v.GetString("log-level"),
				LogType:   v.GetString("log-type"),
				Host:      v.GetString("host"),
				FailAfter: v.GetInt("fail-after"),
				Repeat:    v.GetInt("repeat"),
			}
			return run(cmd.OutOrStdout(), opts)
		},
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := cmd.Flags()
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("log-type", "text", "log output format (text, json, combined)")
	flags.String("host", requests.DefaultHost, "host to stamp on every sample request")
	flags.Int("fail-after", -1, "emit an error after this many requests (negative disables)")
	flags.Int("repeat", 1, "number of independent subscriptions to run")

	return cmd
}

func run(out io.Writer, opts options) error {
	if opts.Repeat < 1 {
		return errors.Errorf("repeat must be at least 1, got %d", opts.Repeat)
	}
	logger.Configure(opts.LogLevel, opts.LogType)

	reqs := requests.Mock(time.Now(), opts.Host)
	stream := requests.Stream(reqs, opts.FailAfter,
		rxlite.WithLogger(log.Logger),
		rxlite.WithName("requests"),
	)

	handler := requests.NewHandler(log.Logger)
	for i := 0; i < opts.Repeat; i++ {
		subscription := stream.Subscribe(handler.Handlers())
		subscription.Unsubscribe()
	}

	summary := handler.Summary()
	if _, err := fmt.Fprintf(out, "handled=%d failed=%d completed=%d last_status=%d\n",
		summary.Handled, summary.Failed, summary.Completed, summary.LastStatus); err != nil {
		return errors.Wrap(err, "writing summary")
	}
	return nil
}
