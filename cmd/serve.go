package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brandquad/procuracao"
	"github.com/brandquad/procuracao/web"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sobe o servidor HTTP com os formulários de geração",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(c.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := c.MakeConfig()
	if err != nil {
		return err
	}

	defer startVips(cfg, logger)()

	gen, err := procuracao.NewGenerator(cfg, c.MakeConverter(logger), logger)
	if err != nil {
		return err
	}
	defer gen.Close()

	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           web.NewServer(gen, c.MakeWebConfig(), logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[*] Listening", zap.String("addr", c.Addr), zap.String("output_dir", cfg.OutputDir))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("[*] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
