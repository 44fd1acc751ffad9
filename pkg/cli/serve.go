package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/cli/config"
	controller "github.com/secmon-lab/techflow/pkg/controller/http"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		firestoreCfg config.Firestore
		reportCfg    reportConfig
	)

	flags := joinFlags(
		serverCfg.Flags(),
		firestoreCfg.Flags(),
		reportCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve archived reports and dashboards over HTTP",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting techflow server",
				slog.String("addr", serverCfg.Addr),
				slog.Bool("enable_run", serverCfg.EnableRun),
				slog.Any("firestore", firestoreCfg),
				slog.Any("report", reportCfg.report),
			)

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			opts := []controller.Option{
				controller.WithBaseURL(reportCfg.report.BaseURL),
			}
			if serverCfg.EnableRun {
				uc, err := reportCfg.newUseCase(ctx, repo)
				if err != nil {
					return goerr.Wrap(err, "failed to configure report")
				}
				opts = append(opts, controller.WithRunner(uc))
			}

			server := controller.NewServer(ctx, serverCfg.Addr, repo, opts...)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
