package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultCalendarID = "primary"

// Client wraps the Google Calendar API service.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// Options locates the credentials used to build a Client.
type Options struct {
	CredentialsPath string // service account or OAuth desktop-app JSON
	TokenPath       string // OAuth token saved by `plannerctl calendar-auth`; default token.json
	CalendarID      string // default "primary"
}

// New builds a Client from the files referenced by opts.
func New(ctx context.Context, opts Options) (*Client, error) {
	data, err := os.ReadFile(opts.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	c, err := NewClientFromCredentialsJSON(ctx, data, opts.TokenPath)
	if err != nil {
		return nil, err
	}
	if opts.CalendarID != "" {
		c.calendarID = opts.CalendarID
	}
	return c, nil
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials.
// Service account JSON is tried first, then OAuth installed-app JSON plus a saved token.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc, calendarID: defaultCalendarID}, nil
	}

	oauthConfig, cfgErr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", err)
	}
	return &Client{service: svc, calendarID: defaultCalendarID}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc, calendarID: defaultCalendarID}, nil
}

// LoadToken reads an OAuth token saved as JSON. An empty path means token.json.
func LoadToken(path string) (*oauth2.Token, error) {
	if path == "" {
		path = "token.json"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("OAuth desktop credentials need a saved token at %s: %w", path, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes tok as JSON with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	if path == "" {
		path = "token.json"
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// AuthConfig parses OAuth desktop-app credentials for the interactive consent flow.
func AuthConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OAuth credentials: %w", err)
	}
	return cfg, nil
}

// CreateEvent creates a new Google Calendar event.
// Timezone is applied to both ends, e.g. "America/Sao_Paulo".
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			// Use time.RFC3339 to embed timezone info directly (convention fixes recommendation)
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	if req.TaskID != "" {
		event.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: map[string]string{TaskIDProperty: req.TaskID},
		}
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = c.calendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		TaskID:      req.TaskID,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

// ListEvents returns single (expanded) events between TimeMin and TimeMax, ordered by start.
// All-day events are reported from midnight to midnight in UTC.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = c.calendarID
	}
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = 250
	}

	resp, err := c.service.Events.List(calendarID).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, Event{
			ID:          item.Id,
			TaskID:      taskIDOf(item),
			Summary:     item.Summary,
			Description: item.Description,
			HtmlLink:    item.HtmlLink,
			StartTime:   parseEventTime(item.Start),
			EndTime:     parseEventTime(item.End),
			Location:    item.Location,
		})
	}
	return events, nil
}

func taskIDOf(item *calendar.Event) string {
	if item.ExtendedProperties == nil {
		return ""
	}
	return item.ExtendedProperties.Private[TaskIDProperty]
}

func parseEventTime(edt *calendar.EventDateTime) time.Time {
	if edt == nil {
		return time.Time{}
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t
		}
	}
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
