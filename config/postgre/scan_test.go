package postgre

import (
	"testing"
	"time"
)

func TestNullTime_Scan(t *testing.T) {
	want := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		value     any
		wantValid bool
		wantErr   bool
	}{
		{name: "nil", value: nil},
		{name: "time", value: want, wantValid: true},
		{name: "date string", value: "2024-05-15", wantValid: true},
		{name: "date bytes", value: []byte("2024-05-15"), wantValid: true},
		{name: "sqlite timestamp", value: "2024-05-15 00:00:00+00:00", wantValid: true},
		{name: "rfc3339 utc", value: "2024-05-15T00:00:00Z", wantValid: true},
		{name: "garbage", value: "next tuesday", wantErr: true},
		{name: "unsupported", value: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n NullTime
			err := n.Scan(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if n.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v", n.Valid, tt.wantValid)
			}
			if n.Valid && !n.Date().Equal(want) {
				t.Errorf("Date() = %v, want %v", n.Date(), want)
			}
		})
	}
}

func TestArgs(t *testing.T) {
	if DateArg(time.Time{}) != nil || TimeArg(time.Time{}) != nil || StringArg("") != nil || IntArg(0) != nil {
		t.Error("zero values must bind as NULL")
	}
	if got := DateArg(time.Date(2024, time.May, 1, 13, 0, 0, 0, time.UTC)); got != "2024-05-01" {
		t.Errorf("DateArg() = %v", got)
	}
	if got := IntArg(30); got != int64(30) {
		t.Errorf("IntArg() = %v", got)
	}
	if got := Placeholders(2, 3); got != "$2, $3, $4" {
		t.Errorf("Placeholders() = %q", got)
	}
}
