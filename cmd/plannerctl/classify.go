package main

import (
	"strings"

	"github.com/spf13/cobra"

	"productivity-planner/internal/planner/classifier"
)

type classifyOutput struct {
	Priority         string `json:"priority"          yaml:"priority"`
	PriorityReason   string `json:"priority_reason"   yaml:"priority_reason"`
	EstimatedMinutes int    `json:"estimated_minutes" yaml:"estimated_minutes"`
	DurationReason   string `json:"duration_reason"   yaml:"duration_reason"`
}

func classifyCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "classify [title]",
		Short: "Suggest a priority and duration for a task title",
		Long: `Run the keyword classifier on a title and optional description.

Examples:
  plannerctl classify "Fix urgent login bug"
  plannerctl classify "Write report" -d "Quarterly numbers for the board"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			p := classifier.SuggestPriority(title, description)
			d := classifier.EstimateDuration(title, description)

			return printResult(cmd, classifyOutput{
				Priority:         string(p.Priority),
				PriorityReason:   p.Reason,
				EstimatedMinutes: d.Minutes,
				DurationReason:   d.Reason,
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")

	return cmd
}
