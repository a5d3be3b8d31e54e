package main

import (
	"context"
	"fmt"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(cmd.String("log-file"))
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	catalog, session, err := r.catalog(ctx, cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	model := ui.NewModel(ctx, catalog)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
