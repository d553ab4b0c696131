package cmd

import (
	"fmt"
	"os"

	"github.com/shahzaib/lessonforge/internal/app"
	"github.com/shahzaib/lessonforge/internal/export"
	"github.com/shahzaib/lessonforge/internal/llm"
	"github.com/shahzaib/lessonforge/internal/store"
	"github.com/shahzaib/lessonforge/internal/workflow"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg := llm.ConfigFromEnv()
	opts := app.Options{
		Exporter: export.NewAdapter(),
		Timeout:  cfg.Timeout,
	}

	// Credentials are resolved once at startup. Without a provider the
	// app still runs, with generation disabled.
	provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Lesson generation will be unavailable.")
		opts.Controller = workflow.New(nil, workflow.DefaultConfig())
	} else {
		opts.Controller = workflow.New(provider, workflow.DefaultConfig())
		opts.ModelID = provider.ModelID()
	}

	return app.Run(opts)
}
