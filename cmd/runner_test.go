package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
	tu "github.com/IvanCheng1/Venue-Booking-Site/internal/testing"
	"github.com/urfave/cli/v3"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			db := tu.NewTestDB(t)

			runner := NewRunner(RunnerOpts{
				Config: config,
				DB:     db,
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if !runner.resolved {
				t.Error("expected a provided config to count as resolved")
			}
			if runner.db != db {
				t.Error("expected db to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.resolved {
				t.Error("expected default config to be resolved later")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil clock uses time.Now", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.now == nil {
				t.Fatal("expected clock to be set")
			}
			if d := time.Since(runner.now()); d < 0 || d > time.Minute {
				t.Errorf("expected clock near now, off by %v", d)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			if err := runner.writeJSON(data, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			if err := runner.writeJSON(data, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if output.String() != expected {
				t.Errorf("expected %q, got %q", expected, output.String())
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			err := runner.writeJSON(make(chan int), false)
			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if output.String() != "hello world" {
				t.Errorf("expected 'hello world', got %q", output.String())
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		names := map[string]bool{}
		for i, cmd := range commands {
			if cmd == nil {
				t.Fatalf("command at index %d is nil", i)
			}
			names[cmd.Name] = true
		}
		for _, want := range []string{"serve", "setup", "seed", "stats", "export", "tui"} {
			if !names[want] {
				t.Errorf("expected %q to be registered", want)
			}
		}
	})

	t.Run("configure", func(t *testing.T) {
		t.Run("reads the config flag and env", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte("[database]\npath = \"from-file.db\"\n[log]\nlevel = \"warn\"\n"), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			t.Setenv("FYYUR_SERVER_PORT", "8080")

			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})
			app := &cli.Command{
				Name:  "configure",
				Flags: []cli.Flag{configFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runner.configure(cmd)
				},
			}
			if err := app.Run(context.Background(), []string{"configure", "--config", path}); err != nil {
				t.Fatalf("configure failed: %v", err)
			}

			if runner.config.Database.Path != "from-file.db" {
				t.Errorf("expected database path from file, got %q", runner.config.Database.Path)
			}
			if runner.config.Server.Port != 8080 {
				t.Errorf("expected port from env, got %d", runner.config.Server.Port)
			}
			if runner.logger.GetLevel().String() != "warn" {
				t.Errorf("expected warn level, got %s", runner.logger.GetLevel())
			}
		})

		t.Run("rejects a bad log level", func(t *testing.T) {
			config := shared.DefaultConfig()
			config.Log.Level = "loud"
			runner := NewRunner(RunnerOpts{Config: config})

			app := &cli.Command{
				Name:  "configure",
				Flags: []cli.Flag{configFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runner.configure(cmd)
				},
			}
			if err := app.Run(context.Background(), []string{"configure"}); err == nil {
				t.Error("expected invalid log level error")
			}
		})
	})

	t.Run("Close", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{DB: tu.NewTestDB(t)})
		if err := runner.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		if runner.db != nil {
			t.Error("expected db to be cleared")
		}
		if err := runner.Close(); err != nil {
			t.Errorf("expected second Close to be a no-op, got %v", err)
		}
	})
}
