package ui

import (
	"strings"
	"testing"
)

func TestShowsHeading(t *testing.T) {
	theme := NewTheme(Colors{Title: "#7D56F4", Upcoming: "#04B575", Past: "#626262"})

	if got := theme.showsHeading(true, 3); !strings.Contains(got, "Upcoming shows (3)") {
		t.Errorf("showsHeading(true, 3) = %q", got)
	}
	if got := theme.showsHeading(false, 0); !strings.Contains(got, "Past shows (0)") {
		t.Errorf("showsHeading(false, 0) = %q", got)
	}
}
