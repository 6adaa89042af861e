package cmd

import (
	"fmt"
	"strings"

	"github.com/quantatutor/quanta/internal/topics"
	"github.com/spf13/cobra"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Browse the topic catalog",
}

var topicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all topics (optionally filtered by strand)",
	RunE: func(cmd *cobra.Command, args []string) error {
		strand, _ := cmd.Flags().GetString("strand")

		var list []topics.Topic
		if strand != "" {
			list = topics.ByStrand(topics.Strand(strand))
			if len(list) == 0 {
				return fmt.Errorf("no topics found for strand %q", strand)
			}
		} else {
			list = topics.TopologicalOrder()
		}

		// Header.
		fmt.Printf("%-24s  %-32s  %5s  %-20s  %s\n",
			"ID", "Name", "Level", "Strand", "Prerequisites")
		fmt.Println(strings.Repeat("─", 110))

		for _, t := range list {
			name := t.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}
			fmt.Printf("%-24s  %-32s  %5d  %-20s  %s\n",
				t.ID, name, t.Level,
				topics.StrandDisplayName(t.Strand),
				strings.Join(t.Prerequisites, ", "))
		}

		fmt.Printf("\n%d topics\n", len(list))
		return nil
	},
}

var topicShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one topic with its prerequisites and dependents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := topics.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:          %s\n", t.ID)
		fmt.Printf("Name:        %s\n", t.Name)
		fmt.Printf("Strand:      %s\n", topics.StrandDisplayName(t.Strand))
		fmt.Printf("Level:       %d\n", t.Level)
		if t.Description != "" {
			fmt.Printf("Description: %s\n", t.Description)
		}
		if len(t.Keywords) > 0 {
			fmt.Printf("Keywords:    %s\n", strings.Join(t.Keywords, ", "))
		}

		prereqs := topics.Prerequisites(t.ID)
		fmt.Println("\nPrerequisites:")
		if len(prereqs) == 0 {
			fmt.Println("  (none — root topic)")
		}
		for _, p := range prereqs {
			fmt.Printf("  %-24s  %s\n", p.ID, p.Name)
		}

		dependents := topics.Dependents(t.ID)
		fmt.Println("\nUnlocks:")
		if len(dependents) == 0 {
			fmt.Println("  (nothing builds on this yet)")
		}
		for _, d := range dependents {
			fmt.Printf("  %-24s  %s\n", d.ID, d.Name)
		}

		return nil
	},
}

func init() {
	topicListCmd.Flags().String("strand", "", "Filter by strand (e.g. algebra)")

	topicCmd.AddCommand(topicListCmd)
	topicCmd.AddCommand(topicShowCmd)
}
