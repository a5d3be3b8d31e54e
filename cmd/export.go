package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/formatter"
	"github.com/urfave/cli/v3"
)

// ExportVenues writes venues grouped by area.
func (r *Runner) ExportVenues(ctx context.Context, cmd *cli.Command) error {
	f, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	catalog, session, err := r.catalog(ctx, cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	areas, err := catalog.Areas(ctx)
	if err != nil {
		return err
	}

	data, err := formatter.ExportAreas(f, areas)
	if err != nil {
		return err
	}
	return r.writeExport(cmd, data, "venues", f)
}

// ExportShows writes the upcoming shows.
func (r *Runner) ExportShows(ctx context.Context, cmd *cli.Command) error {
	f, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	catalog, session, err := r.catalog(ctx, cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	shows, err := catalog.UpcomingShows(ctx)
	if err != nil {
		return err
	}

	data, err := formatter.ExportShows(f, shows)
	if err != nil {
		return err
	}
	return r.writeExport(cmd, data, "shows", f)
}

func (r *Runner) writeExport(cmd *cli.Command, data []byte, base string, f formatter.Format) error {
	path := cmd.String("output")
	if path == "" && !cmd.Bool("file") {
		return formatter.Write(r.output, data)
	}

	written, err := formatter.WriteFile(data, path, base, f)
	if err != nil {
		return err
	}
	r.logger.Info("export written", "path", written, "format", f)
	return nil
}

// ExportAll writes every dataset into one directory along with export_manifest.json.
func (r *Runner) ExportAll(ctx context.Context, cmd *cli.Command) error {
	f, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	catalog, session, err := r.catalog(ctx, cmd)
	if err != nil {
		return err
	}
	defer session.Close()

	now := r.now()
	dir := cmd.String("dir")
	if dir == "" {
		dir = fmt.Sprintf("fyyur_export_%d", now.Unix())
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	areas, err := catalog.Areas(ctx)
	if err != nil {
		return err
	}
	shows, err := catalog.UpcomingShows(ctx)
	if err != nil {
		return err
	}

	venues := 0
	for _, area := range areas {
		venues += len(area.Venues)
	}

	manifest := formatter.Manifest{Format: f, ExportedAt: now.UTC(), Directory: dir}
	for _, job := range []struct {
		dataset string
		records int
		encode  func() ([]byte, error)
	}{
		{"venues", venues, func() ([]byte, error) { return formatter.ExportAreas(f, areas) }},
		{"shows", len(shows), func() ([]byte, error) { return formatter.ExportShows(f, shows) }},
	} {
		data, err := job.encode()
		if err != nil {
			return err
		}
		path, err := formatter.WriteFile(data, "", filepath.Join(dir, job.dataset), f)
		if err != nil {
			return err
		}
		manifest.Files = append(manifest.Files, formatter.ManifestFile{Dataset: job.dataset, Path: path, Records: job.records})
	}

	manifestPath := filepath.Join(dir, "export_manifest.json")
	if err := formatter.WriteManifest(manifest, manifestPath); err != nil {
		return err
	}

	r.logger.Info("export written", "dir", dir, "format", f)
	return r.writePlain("✓ Exported %d venues and %d shows to %s\n", venues, len(shows), dir)
}
