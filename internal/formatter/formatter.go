// package formatter exports catalog listings (venue areas, upcoming shows) to CSV, Markdown and JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/listing"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
)

// Format names an export encoding.
type Format string

const (
	CSV      Format = "csv"
	Markdown Format = "markdown"
	JSON     Format = "json"
)

// Extension is the file extension written for the format.
func (f Format) Extension() string {
	switch f {
	case Markdown:
		return "md"
	default:
		return string(f)
	}
}

// ParseFormat accepts csv, markdown (or md) and json, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return CSV, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	}
	return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, s)
}

// ExportAreas encodes venues grouped by area in format f.
func ExportAreas(f Format, areas []listing.Area) ([]byte, error) {
	switch f {
	case CSV:
		return AreasToCSV(areas)
	case Markdown:
		return AreasToMarkdown(areas), nil
	case JSON:
		return toJSON(areas)
	}
	return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, f)
}

// ExportShows encodes upcoming shows in format f.
func ExportShows(f Format, shows []listing.UpcomingShow) ([]byte, error) {
	switch f {
	case CSV:
		return ShowsToCSV(shows)
	case Markdown:
		return ShowsToMarkdown(shows), nil
	case JSON:
		return toJSON(shows)
	}
	return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, f)
}

// AreasToCSV writes one row per venue with columns: City, State, Venue ID, Venue Name
func AreasToCSV(areas []listing.Area) ([]byte, error) {
	records := [][]string{}
	for _, area := range areas {
		for _, v := range area.Venues {
			records = append(records, []string{area.City, area.State, strconv.FormatInt(v.ID, 10), v.Name})
		}
	}
	return writeCSV([]string{"City", "State", "Venue ID", "Venue Name"}, records)
}

// ShowsToCSV writes one row per show with columns: Start Time, Venue ID, Venue Name, Artist ID, Artist Name, Artist Image
func ShowsToCSV(shows []listing.UpcomingShow) ([]byte, error) {
	records := make([][]string, len(shows))
	for i, s := range shows {
		records[i] = []string{
			s.StartTime,
			strconv.FormatInt(s.VenueID, 10),
			s.VenueName,
			strconv.FormatInt(s.ArtistID, 10),
			s.ArtistName,
			s.ArtistImageLink,
		}
	}
	return writeCSV([]string{"Start Time", "Venue ID", "Venue Name", "Artist ID", "Artist Name", "Artist Image"}, records)
}

func writeCSV(headers []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return buf.Bytes(), nil
}

// AreasToMarkdown renders a heading per area with its venues listed underneath
func AreasToMarkdown(areas []listing.Area) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Venues\n\n")
	fmt.Fprintf(&buf, "**Areas**: %d\n\n", len(areas))
	for _, area := range areas {
		fmt.Fprintf(&buf, "## %s, %s\n\n", area.City, area.State)
		for _, v := range area.Venues {
			fmt.Fprintf(&buf, "- %s (#%d)\n", v.Name, v.ID)
		}
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// ShowsToMarkdown renders upcoming shows as a numbered list
func ShowsToMarkdown(shows []listing.UpcomingShow) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Upcoming Shows\n\n")
	fmt.Fprintf(&buf, "**Shows**: %d\n\n", len(shows))
	for i, s := range shows {
		fmt.Fprintf(&buf, "%d. %s at %s [%s]\n", i+1, s.ArtistName, s.VenueName, s.StartTime)
	}
	return buf.Bytes()
}

func toJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Write copies an export to w.
func Write(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// WriteFile writes an export to path.
//
// Defaults to {base}.{ext} in the working directory when path is empty.
func WriteFile(data []byte, path, base string, f Format) (string, error) {
	if path == "" {
		path = fmt.Sprintf("%s.%s", base, f.Extension())
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}

// ManifestFile is one dataset written by a multi-file export.
type ManifestFile struct {
	Dataset string `json:"dataset"`
	Path    string `json:"path"`
	Records int    `json:"records"`
}

// Manifest summarizes a multi-file export.
type Manifest struct {
	Format     Format         `json:"format"`
	ExportedAt time.Time      `json:"exported_at"`
	Directory  string         `json:"directory"`
	Files      []ManifestFile `json:"files"`
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(m Manifest, path string) error {
	if m.Files == nil {
		m.Files = []ManifestFile{}
	}
	data, err := toJSON(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
