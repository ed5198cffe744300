package main

import (
	"context"
	"encoding/json"
	"fmt"
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/app"
	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env loaded:", err)
	}
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var debug bool
	newConfig := func(opts ...config.Option) *config.Config {
		opts = append(opts, config.WithWriteTimeout(time.Minute))
		if debug {
			opts = append(opts, config.WithLogLevel(zapcore.DebugLevel))
		}
		return config.NewConfig(opts...)
	}

	root := &cobra.Command{
		Use:          "circulation",
		Short:        "Library circulation service: issues, returns and fines",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug log level")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the sweep scheduler and the recalculation consumer",
		RunE: func(*cobra.Command, []string) error {
			return app.Run(newConfig())
		},
	}

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Migrate(cmd.Context(), newConfig())
		},
	}

	sweep := &cobra.Command{
		Use:       "sweep [" + app.SweepFines + "|" + app.SweepOverdue + "]",
		Short:     "Run one sweep and print its result",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{app.SweepFines, app.SweepOverdue},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Minute)
			defer cancel()
			res, err := app.Sweep(ctx, newConfig(config.WithSchedulerDisabled()), args[0])
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(res, "", "\t")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	root.AddCommand(serve, migrate, sweep)
	return root
}
