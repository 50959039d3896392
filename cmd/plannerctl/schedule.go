package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"productivity-planner/internal/model"
	"productivity-planner/internal/planner/classifier"
	"productivity-planner/internal/planner/scheduler"
	"productivity-planner/pkg/datemath"
)

// planFile is the offline scheduling input. JSON files parse too since
// YAML is a superset.
type planFile struct {
	StartDate     string         `yaml:"start_date"`
	EndDate       string         `yaml:"end_date"`
	WorkStartHour int            `yaml:"work_start_hour"`
	WorkEndHour   int            `yaml:"work_end_hour"`
	Tasks         []planTask     `yaml:"tasks"`
	Occupied      []occupiedSlot `yaml:"occupied"`
}

type planTask struct {
	ID               string `yaml:"id"`
	Title            string `yaml:"title"`
	Description      string `yaml:"description"`
	Priority         string `yaml:"priority"`
	EstimatedMinutes int    `yaml:"estimated_minutes"`
}

type occupiedSlot struct {
	Date      string `yaml:"date"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

type slotOutput struct {
	TaskID    string `json:"task_id"    yaml:"task_id"`
	Title     string `json:"title"      yaml:"title"`
	DueDate   string `json:"due_date"   yaml:"due_date"`
	StartTime string `json:"start_time" yaml:"start_time"`
	EndTime   string `json:"end_time"   yaml:"end_time"`
}

type scheduleOutput struct {
	StartDate   string       `json:"start_date"   yaml:"start_date"`
	EndDate     string       `json:"end_date"     yaml:"end_date"`
	Schedule    []slotOutput `json:"schedule"     yaml:"schedule"`
	Unscheduled []string     `json:"unscheduled"  yaml:"unscheduled"`
}

func scheduleCmd() *cobra.Command {
	var (
		file     string
		start    string
		end      string
		timezone string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Propose time slots for the tasks of a plan file",
		Long: `Run the scheduler offline on a YAML or JSON plan file.

Tasks without a priority or estimate get the classifier's suggestion.
--start and --end override the dates of the file and accept the same
shortcuts as the API (today, tomorrow, next monday).

Example plan file:
  start_date: 2024-05-15
  end_date: 2024-05-17
  tasks:
    - id: t1
      title: Fix urgent login bug
  occupied:
    - date: 2024-05-15
      start_time: "09:00"
      end_time: "10:00"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			plan, err := readPlan(in)
			if err != nil {
				return err
			}
			if start != "" {
				plan.StartDate = start
			}
			if end != "" {
				plan.EndDate = end
			}

			parser, err := datemath.NewParser(timezone)
			if err != nil {
				return err
			}
			out, err := runSchedule(plan, parser, time.Now())
			if err != nil {
				return err
			}
			return printResult(cmd, out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "Plan file, - for stdin")
	cmd.Flags().StringVar(&start, "start", "", "First day of the window")
	cmd.Flags().StringVar(&end, "end", "", "Last day of the window")
	cmd.Flags().StringVar(&timezone, "timezone", "UTC", "Timezone used to resolve today")

	return cmd
}

func readPlan(r io.Reader) (planFile, error) {
	var plan planFile
	if err := yaml.NewDecoder(r).Decode(&plan); err != nil {
		return plan, fmt.Errorf("failed to parse plan: %w", err)
	}
	return plan, nil
}

func runSchedule(plan planFile, parser *datemath.Parser, now time.Time) (scheduleOutput, error) {
	startDate := parser.Today(now)
	if plan.StartDate != "" {
		d, err := parser.ParseDate(plan.StartDate, now)
		if err != nil {
			return scheduleOutput{}, fmt.Errorf("start_date: %w", err)
		}
		startDate = d
	}
	var endDate time.Time
	if plan.EndDate != "" {
		d, err := parser.ParseDate(plan.EndDate, now)
		if err != nil {
			return scheduleOutput{}, fmt.Errorf("end_date: %w", err)
		}
		endDate = d
	}

	var busy []model.Task
	for _, o := range plan.Occupied {
		d, err := parser.ParseDate(o.Date, now)
		if err != nil {
			return scheduleOutput{}, fmt.Errorf("occupied date: %w", err)
		}
		busy = append(busy, model.Task{DueDate: d, StartTime: o.StartTime, EndTime: o.EndTime})
	}

	titles := make(map[string]string, len(plan.Tasks))
	items := make([]scheduler.Item, 0, len(plan.Tasks))
	for _, t := range plan.Tasks {
		priority := model.Priority(t.Priority)
		if priority == "" {
			priority = classifier.SuggestPriority(t.Title, t.Description).Priority
		}
		minutes := t.EstimatedMinutes
		if minutes <= 0 {
			minutes = classifier.EstimateDuration(t.Title, t.Description).Minutes
		}
		titles[t.ID] = t.Title
		items = append(items, scheduler.Item{ID: t.ID, Priority: priority, EstimatedMinutes: minutes})
	}

	req := scheduler.Request{
		Tasks:         items,
		Occupied:      scheduler.OccupiedFromTasks(busy),
		StartDate:     startDate,
		EndDate:       endDate,
		WorkStartHour: plan.WorkStartHour,
		WorkEndHour:   plan.WorkEndHour,
	}
	if err := req.Validate(); err != nil {
		return scheduleOutput{}, err
	}
	if endDate.IsZero() {
		endDate = startDate.AddDate(0, 0, scheduler.DefaultWindowDays)
	}

	out := scheduleOutput{
		StartDate:   datemath.Format(startDate),
		EndDate:     datemath.Format(endDate),
		Schedule:    []slotOutput{},
		Unscheduled: []string{},
	}
	placed := make(map[string]bool)
	for _, p := range scheduler.Schedule(req) {
		placed[p.TaskID] = true
		out.Schedule = append(out.Schedule, slotOutput{
			TaskID:    p.TaskID,
			Title:     titles[p.TaskID],
			DueDate:   datemath.Format(p.Date),
			StartTime: p.StartTime(),
			EndTime:   p.EndTime(),
		})
	}
	for _, t := range plan.Tasks {
		if !placed[t.ID] {
			out.Unscheduled = append(out.Unscheduled, t.ID)
		}
	}
	return out, nil
}
