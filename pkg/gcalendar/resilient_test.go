package gcalendar_test

import (
	"context"
	"errors"
	"testing"

	"productivity-planner/pkg/gcalendar"
)

type flakyLister struct {
	failures int
	calls    int
}

func (f *flakyLister) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("backend error")
	}
	return []gcalendar.Event{{ID: "e1"}}, nil
}

func TestRetryingLister(t *testing.T) {
	t.Run("recovers from a transient failure", func(t *testing.T) {
		inner := &flakyLister{failures: 1}
		events, err := gcalendar.NewRetryingLister(inner, 2).ListEvents(context.Background(), gcalendar.ListEventsRequest{})
		if err != nil {
			t.Fatalf("ListEvents: %v", err)
		}
		if len(events) != 1 || inner.calls != 2 {
			t.Errorf("events=%v calls=%d", events, inner.calls)
		}
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		inner := &flakyLister{failures: 5}
		_, err := gcalendar.NewRetryingLister(inner, 2).ListEvents(context.Background(), gcalendar.ListEventsRequest{})
		if err == nil {
			t.Fatal("expected error")
		}
		if inner.calls < 2 {
			t.Errorf("expected a retry, got %d calls", inner.calls)
		}
	})
}
