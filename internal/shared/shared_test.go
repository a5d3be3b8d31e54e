package shared

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func TestLogger(t *testing.T) {
	t.Run("ConfigureLogger", func(t *testing.T) {
		tc := []struct {
			name    string
			level   string
			want    log.Level
			wantErr bool
		}{
			{name: "debug", level: "debug", want: log.DebugLevel},
			{name: "warn", level: "warn", want: log.WarnLevel},
			{name: "empty keeps level", level: "", want: log.InfoLevel},
			{name: "unknown", level: "loud", want: log.InfoLevel, wantErr: true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				l := NewLogger(&bytes.Buffer{})
				err := ConfigureLogger(l, LogConfig{Level: tt.level})

				if (err != nil) != tt.wantErr {
					t.Fatalf("ConfigureLogger() error = %v, wantErr %v", err, tt.wantErr)
				}
				if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				if got := l.GetLevel(); got != tt.want {
					t.Errorf("level = %v, want %v", got, tt.want)
				}
			})
		}
	})

	t.Run("WithLogger", func(t *testing.T) {
		var buf bytes.Buffer
		l := WithLogger(NewLogger(&buf), "request_id", "abc")
		l.Info("hello")

		if !strings.Contains(buf.String(), "request_id=abc") {
			t.Errorf("expected child logger fields in output, got %q", buf.String())
		}
	})

	t.Run("NewFileLogger", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "fyyur.log")
		l, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger() error = %v", err)
		}
		l.Info("written")
	})
}

func TestGenerateID(t *testing.T) {
	id := GenerateID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("GenerateID() = %q is not a uuid: %v", id, err)
	}
	if id == GenerateID() {
		t.Error("GenerateID() returned the same id twice")
	}
}

func TestDSN(t *testing.T) {
	tc := []struct {
		path string
		want string
	}{
		{path: "./fyyur.db", want: "./fyyur.db?_foreign_keys=on&_loc=auto"},
		{path: ":memory:", want: ":memory:?_foreign_keys=on&_loc=auto"},
		{path: "file:test.db?cache=shared", want: "file:test.db?cache=shared&_foreign_keys=on&_loc=auto"},
	}

	for _, tt := range tc {
		t.Run(tt.path, func(t *testing.T) {
			if got := DSN(tt.path); got != tt.want {
				t.Errorf("DSN() = %v, want %v", got, tt.want)
			}
		})
	}
}
