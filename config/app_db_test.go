package config

import (
	"strings"
	"testing"

	"github.com/votigram/waitlist-api/internal/log"
)

func TestWithConnectTimeout(t *testing.T) {
	cases := []struct {
		name string
		dsn  string
		want string
	}{
		{
			name: "url without query",
			dsn:  "postgres://user:pass@db:5432/waitlist",
			want: "postgres://user:pass@db:5432/waitlist?connect_timeout=5",
		},
		{
			name: "url with query",
			dsn:  "postgres://user:pass@db:5432/waitlist?sslmode=require",
			want: "postgres://user:pass@db:5432/waitlist?sslmode=require&connect_timeout=5",
		},
		{
			name: "keyword form",
			dsn:  "host=db port=5432 user=u dbname=waitlist",
			want: "host=db port=5432 user=u dbname=waitlist connect_timeout=5",
		},
		{
			name: "existing timeout preserved",
			dsn:  "postgres://user:pass@db:5432/waitlist?connect_timeout=30",
			want: "postgres://user:pass@db:5432/waitlist?connect_timeout=30",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := withConnectTimeout(tc.dsn); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestBuildDSNFromEnv_SetsConnectTimeout(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_USER", "waitlist")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB_NAME", "waitlist")
	t.Setenv("POSTGRES_SSLMODE", "disable")

	logger := log.NewLoggerWithJSONOutput()
	cfg := &DBConfig{SSLMode: "require"}

	dsn, _, err, done := buildDSNFromEnv("", logger, cfg)
	if err != nil || done {
		t.Fatalf("expected DSN, got err=%v done=%v", err, done)
	}

	if !strings.Contains(dsn, "connect_timeout=5") {
		t.Fatalf("expected DSN to bound connection establishment, got %q", dsn)
	}
}

func TestBuildDSNFromEnv_DatabaseURLGetsConnectTimeout(t *testing.T) {
	logger := log.NewLoggerWithJSONOutput()
	cfg := &DBConfig{SSLMode: "require"}

	dsn, _, err, done := buildDSNFromEnv("postgres://u:p@db:5432/waitlist", logger, cfg)
	if err != nil || done {
		t.Fatalf("expected DSN, got err=%v done=%v", err, done)
	}

	if !strings.Contains(dsn, "connect_timeout=5") {
		t.Fatalf("expected DSN to bound connection establishment, got %q", dsn)
	}
}
