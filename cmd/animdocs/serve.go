// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"animdocs/internal/cache"
	"animdocs/internal/config"
	"animdocs/internal/handlers"
	"animdocs/internal/middleware"
	"animdocs/internal/render"
	"animdocs/internal/router"
	"animdocs/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Start the documentation server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().String("host", "", "address to listen on")
	cmd.Flags().Int("port", 0, "port to listen on")
	cmd.Flags().String("env", "", "environment (development, production)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg
	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"cache", cfg.CacheEnabled(),
	)

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("initialize template renderer: %w", err)
	}

	// L1 is always on; L2 is shared through Valkey when configured.
	var l2 cache.Store
	if cfg.CacheEnabled() {
		client, err := cache.ConnectValkey(ctx, cfg.ValkeyAddr, cfg.ValkeyPassword)
		if err != nil {
			return fmt.Errorf("connect to valkey: %w", err)
		}
		defer client.Close()
		l2 = cache.NewPageCache(client, cfg.CacheTTL)
		slog.Info("valkey page cache connected", "addr", cfg.ValkeyAddr)
	} else {
		slog.Warn("valkey not configured, page cache is in-process only")
	}
	pages := cache.NewLayered(cache.NewMemoryCache(cfg.CacheTTL, cache.DefaultMaxEntries), l2)

	docs := handlers.NewDocs(store.New(), renderer, pages, handlers.SettingsFrom(cfg))

	limiter := middleware.NewRateLimiter(cfg.SearchRateLimit, time.Minute)
	defer limiter.Stop()

	r, err := router.New(docs, limiter)
	if err != nil {
		return err
	}

	config.Watch(a.v, func(next *config.Config) {
		if level, err := config.ParseLevel(next.LogLevel); err == nil {
			a.level.Set(level)
		}
		docs.Apply(context.Background(), handlers.SettingsFrom(next))
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	slog.Info("shutdown signal received")

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
