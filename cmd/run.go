package cmd

import (
	"fmt"
	"os"

	"github.com/quantatutor/quanta/internal/app"
	"github.com/quantatutor/quanta/internal/llm"
	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/theory"
	"github.com/quantatutor/quanta/internal/tutor"
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

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Generator = tutor.NewGenerator(provider, tutor.DefaultConfig())
		opts.TheoryService = theory.NewService(provider, theory.DefaultConfig())
		opts.PrereqSource = tutor.NewPrereqSource(eventRepo)
		opts.QuizGenerator = tutor.NewQuizGenerator(provider, tutor.DefaultQuizConfig())
		opts.Grader = tutor.NewGrader(provider, tutor.DefaultGraderConfig())
	}

	return app.Run(opts)
}
