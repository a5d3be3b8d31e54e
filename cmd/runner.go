package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/repositories"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/services"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config   *shared.Config
	resolved bool
	db       *sqlx.DB
	logger   *log.Logger
	output   io.Writer
	now      func() time.Time
}

// RunnerOpts contains configuration options for creating a Runner.
//
// A non-nil Config is used as is and the --config flag is ignored.
// A non-nil DB is used instead of opening the configured database.
type RunnerOpts struct {
	Config *shared.Config
	DB     *sqlx.DB
	Logger *log.Logger
	Output io.Writer
	Now    func() time.Time
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	resolved := opts.Config != nil
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Runner{
		config:   opts.Config,
		resolved: resolved,
		db:       opts.DB,
		logger:   opts.Logger,
		output:   opts.Output,
		now:      opts.Now,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, setupCommand, seedCommand, statsCommand, exportCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the logger used by later commands.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// Close releases the database pool, if one was opened.
func (r *Runner) Close() error {
	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

// configure loads the file named by --config, applies FYYUR_* overrides and
// the configured log level. It runs once per Runner.
func (r *Runner) configure(cmd *cli.Command) error {
	if !r.resolved {
		config, err := shared.ResolveConfig(cmd.String("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		r.config = config
		r.resolved = true
	}

	return shared.ConfigureLogger(r.logger, r.config.Log)
}

// database opens the configured database and brings its schema up to date.
func (r *Runner) database(ctx context.Context) (*sqlx.DB, error) {
	if r.db != nil {
		return r.db, nil
	}

	path := r.config.Database.Path
	r.logger.Debug("opening database", "path", path)

	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	r.db = db
	return db, nil
}

// catalog acquires a session for the lifetime of one command. Callers close the session.
func (r *Runner) catalog(ctx context.Context, cmd *cli.Command) (*services.Catalog, *repositories.Session, error) {
	if err := r.configure(cmd); err != nil {
		return nil, nil, err
	}

	db, err := r.database(ctx)
	if err != nil {
		return nil, nil, err
	}

	session, err := repositories.Acquire(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	return services.NewCatalog(session, r.now), session, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
