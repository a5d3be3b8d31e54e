package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/listing"
)

//go:embed templates/*.html
var templateFS embed.FS

// DisplayTimeLayout is how start times appear on rendered pages.
const DisplayTimeLayout = "Mon Jan 2, 2006 3:04PM"

// Page is the data every template receives.
type Page struct {
	Title   string
	Flashes []string
	Data    any
}

// Renderer holds one parsed template set per page, each with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"datetime": func(start string) string {
		t, err := time.Parse(listing.StartTimeLayout, start)
		if err != nil {
			return start
		}
		return t.Format(DisplayTimeLayout)
	},
	"join": strings.Join,
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	r := &Renderer{pages: map[string]*template.Template{}}
	for _, name := range names {
		base := strings.TrimSuffix(path.Base(name), ".html")
		if base == "layout" {
			continue
		}

		t, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", base, err)
		}
		r.pages[base] = t
	}
	return r, nil
}

// Render executes the named page into w.
//
// The page is rendered into memory first so a failing template never leaves
// a half-written response.
func (r *Renderer) Render(w io.Writer, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", page); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
