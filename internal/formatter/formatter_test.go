package formatter

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/listing"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
	th "github.com/IvanCheng1/Venue-Booking-Site/internal/testing"
)

var (
	testAreas = []listing.Area{
		{City: "San Francisco", State: "CA", Venues: []models.VenueSummary{
			{ID: 1, Name: "The Musical Hop"},
			{ID: 3, Name: "Park Square Live Music & Coffee"},
		}},
		{City: "New York", State: "NY", Venues: []models.VenueSummary{
			{ID: 2, Name: "The Dueling Pianos Bar"},
		}},
	}
	testShows = []listing.UpcomingShow{
		{VenueID: 3, VenueName: "Park Square Live Music & Coffee", ArtistID: 6, ArtistName: "The Wild Sax Band", ArtistImageLink: "https://example.com/sax.jpg", StartTime: "2035-04-01 20:00:00.000000"},
		{VenueID: 1, VenueName: "The Musical Hop", ArtistID: 4, ArtistName: "Guns N Petals", StartTime: "2035-04-08 20:00:00.000000"},
	}
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ext  string
	}{
		{"csv", CSV, "csv"},
		{"CSV", CSV, "csv"},
		{"markdown", Markdown, "md"},
		{"md", Markdown, "md"},
		{" json ", JSON, "json"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if err != nil {
				t.Fatalf("ParseFormat(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if got.Extension() != tt.ext {
				t.Errorf("expected extension %q, got %q", tt.ext, got.Extension())
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseFormat("xml")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestExporters(t *testing.T) {
	t.Run("AreasToCSV", func(t *testing.T) {
		data, err := AreasToCSV(testAreas)
		if err != nil {
			t.Fatalf("AreasToCSV failed: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 4 {
			t.Fatalf("expected header plus 3 rows, got %d: %q", len(lines), lines)
		}
		if lines[0] != "City,State,Venue ID,Venue Name" {
			t.Errorf("CSV missing headers, got: %s", lines[0])
		}
		if lines[1] != "San Francisco,CA,1,The Musical Hop" {
			t.Errorf("unexpected first row: %s", lines[1])
		}
		if lines[3] != "New York,NY,2,The Dueling Pianos Bar" {
			t.Errorf("unexpected last row: %s", lines[3])
		}
	})

	t.Run("ShowsToCSV", func(t *testing.T) {
		data, err := ShowsToCSV(testShows)
		if err != nil {
			t.Fatalf("ShowsToCSV failed: %v", err)
		}
		output := string(data)
		if !strings.HasPrefix(output, "Start Time,Venue ID,Venue Name,Artist ID,Artist Name,Artist Image\n") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "2035-04-01 20:00:00.000000,3,Park Square Live Music & Coffee,6,The Wild Sax Band,https://example.com/sax.jpg") {
			t.Errorf("CSV missing show row, got: %s", output)
		}
	})

	t.Run("AreasToMarkdown", func(t *testing.T) {
		output := string(AreasToMarkdown(testAreas))
		for _, want := range []string{
			"# Venues",
			"**Areas**: 2",
			"## San Francisco, CA",
			"- The Musical Hop (#1)",
			"## New York, NY",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got: %s", want, output)
			}
		}
		if strings.Index(output, "San Francisco") > strings.Index(output, "New York") {
			t.Error("expected areas in input order")
		}
	})

	t.Run("ShowsToMarkdown", func(t *testing.T) {
		output := string(ShowsToMarkdown(testShows))
		if !strings.Contains(output, "**Shows**: 2") {
			t.Errorf("Markdown missing show count")
		}
		if !strings.Contains(output, "1. The Wild Sax Band at Park Square Live Music & Coffee [2035-04-01 20:00:00.000000]") {
			t.Errorf("Markdown missing first show, got: %s", output)
		}
		if !strings.Contains(output, "2. Guns N Petals at The Musical Hop") {
			t.Errorf("Markdown missing second show")
		}
	})

	t.Run("ExportShows JSON", func(t *testing.T) {
		data, err := ExportShows(JSON, testShows)
		if err != nil {
			t.Fatalf("ExportShows failed: %v", err)
		}
		output := string(data)
		if !strings.Contains(output, `"artist_name": "The Wild Sax Band"`) {
			t.Errorf("JSON missing artist name, got: %s", output)
		}
		if strings.Contains(output, "ShowID") {
			t.Errorf("JSON should not expose the show id")
		}
	})

	t.Run("ExportAreas empty", func(t *testing.T) {
		data, err := ExportAreas(JSON, []listing.Area{})
		if err != nil {
			t.Fatalf("ExportAreas failed: %v", err)
		}
		if strings.TrimSpace(string(data)) != "[]" {
			t.Errorf("expected empty array, got %s", data)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := ExportAreas(Format("xml"), testAreas); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestWriters(t *testing.T) {
	t.Run("Write", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, []byte("hello")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if buf.String() != "hello" {
			t.Errorf("expected hello, got %q", buf.String())
		}
	})

	t.Run("Write fails", func(t *testing.T) {
		if err := Write(&th.FWriter{}, []byte("hello")); err == nil {
			t.Error("expected write error")
		}
	})

	t.Run("WriteFile", func(t *testing.T) {
		t.Run("WithDefaultPath", func(t *testing.T) {
			tempDir := t.TempDir()
			originalDir := th.MustGetwd(t)
			th.MustChdir(t, tempDir)
			defer th.MustChdir(t, originalDir)

			data := AreasToMarkdown(testAreas)
			path, err := WriteFile(data, "", "venues", Markdown)
			if err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			if path != "venues.md" {
				t.Errorf("expected 'venues.md', got '%s'", path)
			}
			th.AssertFileExists(t, path)
			if content := th.MustReadFile(t, path); !strings.Contains(content, "## New York, NY") {
				t.Errorf("file missing area heading")
			}
		})

		t.Run("WithCustomPath", func(t *testing.T) {
			tempDir := t.TempDir()
			originalDir := th.MustGetwd(t)
			th.MustChdir(t, tempDir)
			defer th.MustChdir(t, originalDir)

			data, err := ShowsToCSV(testShows)
			if err != nil {
				t.Fatalf("ShowsToCSV failed: %v", err)
			}
			path, err := WriteFile(data, "my_shows.csv", "shows", CSV)
			if err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			if path != "my_shows.csv" {
				t.Errorf("expected 'my_shows.csv', got '%s'", path)
			}
			th.AssertFileExists(t, path)
		})
	})
	t.Run("WriteManifest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "export_manifest.json")
		m := Manifest{
			Format:     CSV,
			ExportedAt: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
			Directory:  "out",
			Files:      []ManifestFile{{Dataset: "venues", Path: "out/venues.csv", Records: 3}},
		}
		if err := WriteManifest(m, path); err != nil {
			t.Fatalf("WriteManifest failed: %v", err)
		}

		content := th.MustReadFile(t, path)
		for _, want := range []string{`"format": "csv"`, `"exported_at": "2035-04-01T20:00:00Z"`, `"dataset": "venues"`, `"records": 3`} {
			if !strings.Contains(content, want) {
				t.Errorf("manifest missing %s, got: %s", want, content)
			}
		}
	})

	t.Run("WriteManifest without files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manifest.json")
		if err := WriteManifest(Manifest{Format: JSON}, path); err != nil {
			t.Fatalf("WriteManifest failed: %v", err)
		}
		if content := th.MustReadFile(t, path); !strings.Contains(content, `"files": []`) {
			t.Errorf("expected empty files array, got: %s", content)
		}
	})
}
