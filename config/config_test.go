package config

import (
	"reflect"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Environment: EnvironmentConfig{Name: "development"},
		Database:    DatabaseConfig{Driver: DriverPostgres},
		JWT:         JWTConfig{Secret: defaultJWTSecret},
		Planner:     PlannerConfig{Timezone: "UTC", WorkStartHour: 9, WorkEndHour: 18, WindowDays: 7},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "start after end", mutate: func(c *Config) { c.Planner.WorkStartHour = 18; c.Planner.WorkEndHour = 9 }, wantErr: true},
		{name: "equal hours", mutate: func(c *Config) { c.Planner.WorkEndHour = 9 }, wantErr: true},
		{name: "end past midnight", mutate: func(c *Config) { c.Planner.WorkEndHour = 25 }, wantErr: true},
		{name: "negative window", mutate: func(c *Config) { c.Planner.WindowDays = -1 }, wantErr: true},
		{name: "window over a year", mutate: func(c *Config) { c.Planner.WindowDays = 367 }, wantErr: true},
		{name: "bad timezone", mutate: func(c *Config) { c.Planner.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: true},
		{name: "sqlite driver", mutate: func(c *Config) { c.Database.Driver = DriverSQLite }},
		{name: "production with default secret", mutate: func(c *Config) { c.Environment.Name = "production" }, wantErr: true},
		{name: "production with real secret", mutate: func(c *Config) {
			c.Environment.Name = "production"
			c.JWT.Secret = "s3cr3t"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" http://a.com, ,http://b.com ")
	want := []string{"http://a.com", "http://b.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitList() = %v, want %v", got, want)
	}
	if got := splitList(""); got != nil {
		t.Errorf("splitList(\"\") = %v, want nil", got)
	}
}
