package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/spf13/cobra"

	"productivity-planner/config"
	pg "productivity-planner/config/postgre"
	"productivity-planner/internal/agent"
	"productivity-planner/internal/agent/tools"
	"productivity-planner/internal/model"
	plannerUC "productivity-planner/internal/planner/usecase"
	taskRepo "productivity-planner/internal/task/repository/postgre"
	taskUC "productivity-planner/internal/task/usecase"
	"productivity-planner/pkg/datemath"
	"productivity-planner/pkg/gcalendar"
	"productivity-planner/pkg/log"
)

type taskIDsArgs struct {
	TaskIDs []string `json:"task_ids" jsonschema:"description=Ids of the tasks to analyze"`
}

type scheduleArgs struct {
	TaskIDs       []string `json:"task_ids"                  jsonschema:"description=Ids of the tasks to schedule"`
	StartDate     string   `json:"start_date,omitempty"      jsonschema:"description=First day of the window (YYYY-MM-DD or today)"`
	EndDate       string   `json:"end_date,omitempty"        jsonschema:"description=Last day of the window"`
	WorkStartHour int      `json:"work_start_hour,omitempty" jsonschema:"description=First working hour (default 9)"`
	WorkEndHour   int      `json:"work_end_hour,omitempty"   jsonschema:"description=Hour the working day ends (default 18)"`
}

type checkCalendarArgs struct {
	StartDate string `json:"start_date"          jsonschema:"description=Start date (YYYY-MM-DD, today, tomorrow)"`
	EndDate   string `json:"end_date,omitempty"  jsonschema:"description=End date, inclusive"`
	TimeZone  string `json:"time_zone,omitempty" jsonschema:"description=IANA time zone for day bounds"`
}

func mcpCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the planning tools to an MCP client over stdio",
		Long: `Expose analyze_priorities, estimate_durations, schedule_tasks and,
when Google Calendar is configured, check_calendar as MCP tools acting
on behalf of --user-id. Logs go to stderr since stdout carries the
protocol.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				return errors.New("--user-id is required")
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ctx := cmd.Context()
			registry, closeFn, err := buildRegistry(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			return mcp.ServeStdio(ctx, newMCPServer(registry, model.Scope{UserID: userID}))
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "User whose tasks the tools act on")

	return cmd
}

// buildRegistry wires the task store and planner the same way the API does.
func buildRegistry(ctx context.Context, cfg *config.Config) (*agent.ToolRegistry, func(), error) {
	l := log.Init(log.ZapConfig{Level: cfg.Logger.Level, Mode: cfg.Logger.Mode, Encoding: log.EncodingJSON, Stderr: true})

	db, err := pg.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { pg.Disconnect(context.Background(), db) }

	parser, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	tasks := taskUC.New(taskRepo.New(db, l), l, parser)
	planner := plannerUC.New(l, tasks, parser, nil, plannerUC.Options{
		WorkStartHour: cfg.Planner.WorkStartHour,
		WorkEndHour:   cfg.Planner.WorkEndHour,
		WindowDays:    cfg.Planner.WindowDays,
	})

	var calendar tools.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, err := gcalendar.New(ctx, gcalendar.Options{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Google Calendar not available: %v\n", err)
		} else {
			calendar = gcalendar.NewRetryingLister(client, 0)
		}
	}

	return tools.NewRegistry(planner, calendar, parser, l), closeFn, nil
}

func newMCPServer(registry *agent.ToolRegistry, sc model.Scope) *mcp.Server {
	srv := mcp.NewServer(mcp.ServerInfo{Name: "plannerctl", Version: Version},
		mcp.WithDescription("Task priority, duration and scheduling suggestions. Nothing is saved."),
	)

	for _, tool := range registry.List() {
		name := tool.Name()
		b := srv.Tool(name).Description(tool.Description())
		switch name {
		case "schedule_tasks":
			b.Handler(func(ctx context.Context, args scheduleArgs) (any, error) {
				return callTool(ctx, registry, sc, name, args)
			})
		case "check_calendar":
			b.Handler(func(ctx context.Context, args checkCalendarArgs) (any, error) {
				return callTool(ctx, registry, sc, name, args)
			})
		default:
			b.Handler(func(ctx context.Context, args taskIDsArgs) (any, error) {
				return callTool(ctx, registry, sc, name, args)
			})
		}
	}
	return srv
}

// callTool forwards typed MCP arguments to the registry as a JSON object
// on behalf of sc.
func callTool(ctx context.Context, registry *agent.ToolRegistry, sc model.Scope, name string, args any) (any, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	var params map[string]interface{}
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, err
	}
	return registry.Execute(model.SetScopeToContext(ctx, sc), name, params)
}
