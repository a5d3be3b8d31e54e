package shared

import (
	"context"
	"testing"
)

func TestMigrationRunner(t *testing.T) {
	ctx := context.Background()

	t.Run("loadMigrations", func(t *testing.T) {
		migrations, err := loadMigrations()
		if err != nil {
			t.Fatalf("failed to load migrations: %v", err)
		}

		if len(migrations) != 2 {
			t.Fatalf("expected 2 migrations, got %d", len(migrations))
		}

		for i := 1; i < len(migrations); i++ {
			if migrations[i].Version <= migrations[i-1].Version {
				t.Errorf("migrations not sorted: version %d comes after %d", migrations[i].Version, migrations[i-1].Version)
			}
		}

		if migrations[0].Name != "create_listings" {
			t.Errorf("expected first migration name create_listings, got %q", migrations[0].Name)
		}
	})

	t.Run("RunMigrations And Rollback", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(ctx, db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		for _, table := range []string{"venues", "artists", "shows"} {
			if _, err := db.Exec("SELECT 1 FROM " + table + " LIMIT 1"); err != nil {
				t.Errorf("%s table should exist after migrations: %v", table, err)
			}
		}

		if err := RollbackMigration(ctx, db); err != nil {
			t.Fatalf("failed to rollback migration: %v", err)
		}

		if _, err := db.Exec("SELECT 1 FROM shows LIMIT 1"); err == nil {
			t.Error("shows table should be dropped after rollback")
		}

		applied, err := AppliedMigrations(ctx, db)
		if err != nil {
			t.Fatalf("failed to list applied migrations: %v", err)
		}
		if len(applied) != 1 || applied[0].Version != 1 {
			t.Errorf("expected only version 1 applied after rollback, got %+v", applied)
		}
	})

	t.Run("Rollback Empty", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if _, err := AppliedMigrations(ctx, db); err != nil {
			t.Fatalf("failed to list applied migrations: %v", err)
		}

		if err := RollbackMigration(ctx, db); err == nil {
			t.Error("expected error rolling back with nothing applied")
		}
	})

	t.Run("Idempotent Migrations", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(ctx, db); err != nil {
			t.Fatalf("failed to run migrations first time: %v", err)
		}

		if err := RunMigrations(ctx, db); err != nil {
			t.Fatalf("failed to run migrations second time: %v", err)
		}

		applied, err := AppliedMigrations(ctx, db)
		if err != nil {
			t.Fatalf("failed to list applied migrations: %v", err)
		}

		migrations, _ := loadMigrations()
		if len(applied) != len(migrations) {
			t.Errorf("expected %d migrations to be applied, got %d", len(migrations), len(applied))
		}
	})
}

func TestRemoveComments(t *testing.T) {
	got := removeComments("-- header\nCREATE TABLE t (id INTEGER); -- trailing\n\n")
	want := "CREATE TABLE t (id INTEGER);"
	if got != want {
		t.Errorf("removeComments() = %q, want %q", got, want)
	}
}

func TestExecMigration(t *testing.T) {
	ctx := context.Background()

	t.Run("semicolon inside a comment", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := createMigrationsTable(ctx, db); err != nil {
			t.Fatalf("failed to create migrations table: %v", err)
		}

		script := "-- first; second\nCREATE TABLE a (id INTEGER); -- trailing; note\nCREATE TABLE b (id INTEGER);\n"
		if err := execMigration(ctx, db, script, "INSERT INTO schema_migrations (version) VALUES (?)", 7); err != nil {
			t.Fatalf("execMigration() error = %v", err)
		}

		for _, table := range []string{"a", "b"} {
			if _, err := db.Exec("SELECT 1 FROM " + table + " LIMIT 1"); err != nil {
				t.Errorf("%s table should exist: %v", table, err)
			}
		}

		applied, err := AppliedMigrations(ctx, db)
		if err != nil {
			t.Fatalf("failed to list applied migrations: %v", err)
		}
		if len(applied) != 1 || applied[0].Version != 7 {
			t.Errorf("expected version 7 recorded, got %+v", applied)
		}
	})

	t.Run("embedded scripts apply on a file database", func(t *testing.T) {
		db, err := NewDatabase(t.TempDir() + "/fyyur.db")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(ctx, db); err != nil {
			t.Fatalf("RunMigrations() error = %v", err)
		}
	})
}
