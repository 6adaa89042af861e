package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/quantatutor/quanta/internal/store"
	"github.com/quantatutor/quanta/internal/topics"
	"github.com/quantatutor/quanta/internal/tutor"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-topic mastery and progression",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		snap, err := s.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}

		statuses, err := tutor.TopicStatuses(ctx, s.EventRepo(), snap)
		if err != nil {
			return fmt.Errorf("derive topic standing: %w", err)
		}

		// Header.
		fmt.Printf("%-32s  %-8s  %8s  %9s  %s\n",
			"Topic", "Tier", "Mastery", "Attempts", "Status")
		fmt.Println(strings.Repeat("─", 80))

		var attempted int
		for _, st := range statuses {
			name := st.Topic.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}

			tier := st.Tier
			if tier == "" {
				tier = "—"
			}

			mastery := "—"
			if st.Attempts > 0 {
				mastery = fmt.Sprintf("%d%%", st.MasteryPct)
				attempted++
			}

			status := "open"
			switch {
			case !st.Accessible:
				status = "locked"
			case st.Unlocked:
				status = "unlocked early"
			case st.Attempts > 0 && st.MasteryPct >= topics.WeakMasteryCutoff:
				status = "strong"
			}

			fmt.Printf("%-32s  %-8s  %8s  %9d  %s\n",
				name, tier, mastery, st.Attempts, status)
		}

		fmt.Println(strings.Repeat("─", 80))
		fmt.Printf("%d of %d topics attempted\n", attempted, len(statuses))

		next := tutor.RecommendNext(statuses)
		if next.ID != "" {
			fmt.Printf("Up next: %s\n", next.Name)
		}
		return nil
	},
}
