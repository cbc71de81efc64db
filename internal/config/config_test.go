package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Errorf("AppPort = %q", c.AppPort)
	}
	if c.DBDriver != "sqlite" || c.SQLitePath != "emprest.db" {
		t.Errorf("db defaults = %q/%q", c.DBDriver, c.SQLitePath)
	}
	if c.RedisAddr != "" {
		t.Errorf("RedisAddr default = %q, want empty (redis optional)", c.RedisAddr)
	}
	if c.IdempTTLSecs != 300 {
		t.Errorf("IdempTTLSecs = %d", c.IdempTTLSecs)
	}
	if c.UpcomingWindowDays != 30 {
		t.Errorf("UpcomingWindowDays = %d", c.UpcomingWindowDays)
	}
	s := c.Settings
	if s.DefaultInterestRate != 5 || s.DefaultFrequency != "monthly" || s.DefaultInstallments != 12 || s.Currency != "R$" {
		t.Errorf("settings defaults = %+v", s)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate on defaults: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_PORT", "3307")
	t.Setenv("DEFAULT_INTEREST_RATE", "7.5")
	t.Setenv("UPCOMING_WINDOW_DAYS", "14")

	c := Load()
	if c.DBDriver != "mysql" {
		t.Errorf("DBDriver = %q", c.DBDriver)
	}
	if c.Settings.DefaultInterestRate != 7.5 {
		t.Errorf("DefaultInterestRate = %v", c.Settings.DefaultInterestRate)
	}
	if c.UpcomingWindowDays != 14 {
		t.Errorf("UpcomingWindowDays = %d", c.UpcomingWindowDays)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if !strings.Contains(c.DSN(), "db.internal:3307") {
		t.Errorf("DSN = %q", c.DSN())
	}
}

func TestValidate_Rejections(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	if err := Load().Validate(); err == nil {
		t.Error("unsupported driver accepted")
	}

	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("MYSQL_PORT", "not-a-port")
	if err := Load().Validate(); err == nil {
		t.Error("bad mysql port accepted")
	}
}
