// Package main provides the draftsmith binary entry point.
// Draftsmith turns rough notes into polished documents: pick a
// template, type notes, generate a draft, refine it in plain
// language, then save or export it.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/draftsmith/draftsmith/internal/config"
	"github.com/draftsmith/draftsmith/internal/export"
	"github.com/draftsmith/draftsmith/internal/llm"
	"github.com/draftsmith/draftsmith/internal/store"
	"github.com/draftsmith/draftsmith/internal/tui"
	"github.com/draftsmith/draftsmith/internal/web"
	"github.com/draftsmith/draftsmith/internal/writer"
)

const (
	Version = "0.1.0"
	appName = "draftsmith"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Turn rough notes into polished documents",
		Long: `Draftsmith is a document drafting assistant. Give it rough notes
and a document type and it writes a clean first draft, then reworks
the draft from plain-language instructions until it reads right.
Finished documents export to PDF or Word, or save as drafts to
revisit later.

Run with no arguments for the interactive terminal app, or use
"draftsmith serve" to expose the same workflow in a browser.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the browser front end",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(logLevel)
		},
	}
	serve.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.AddCommand(serve)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

// bootstrap loads .env and config, then wires the shared
// collaborators. A missing API key is not fatal here: the writer
// reports it in its output, which both front ends surface.
func bootstrap(logger *slog.Logger) (*config.Config, *writer.Writer, *store.Store, *export.Exporter, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		logger.Warn("no usable model provider", slog.String("error", err.Error()))
		provider = nil
	}

	st, err := store.New(cfg.DraftsDir, logger)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("open drafts directory: %w", err)
	}

	w := writer.New(provider, cfg.Model, logger)
	ex := export.NewExporter(cfg.DraftsDir, logger)
	return cfg, w, st, ex, nil
}

func runTUI() error {
	// The terminal is owned by the UI, so logs are dropped.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, w, st, ex, err := bootstrap(logger)
	if err != nil {
		return err
	}

	app := tui.NewApp(w, st, ex)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func runServe(logLevel string) error {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, w, st, ex, err := bootstrap(logger)
	if err != nil {
		return err
	}

	srv, err := web.New(cfg, w, st, ex, logger)
	if err != nil {
		return err
	}
	return srv.ListenAndServe()
}
