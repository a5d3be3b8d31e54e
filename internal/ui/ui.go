package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/listing"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	MenuView ViewState = iota
	VenueListView
	ArtistListView
	ShowListView
	DetailView
	ConfirmView
)

// Source is the part of the catalog the browser reads and deletes through.
type Source interface {
	Areas(ctx context.Context) ([]listing.Area, error)
	Artists(ctx context.Context) ([]models.ArtistSummary, error)
	UpcomingShows(ctx context.Context) ([]listing.UpcomingShow, error)
	VenueDetail(ctx context.Context, id int64) (*listing.VenueDetail, error)
	ArtistDetail(ctx context.Context, id int64) (*listing.ArtistDetail, error)
	DeleteVenue(ctx context.Context, id int64) error
	DeleteArtist(ctx context.Context, id int64) error
}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	source  Source
	view    ViewState
	back    ViewState
	width   int
	height  int
	menu    list.Model
	venues  list.Model
	artists list.Model
	shows   list.Model
	detail  any
	status  string
	err     error
	help    help.Model
	keys    keyMap
}

// NewModel creates a new TUI model over source.
func NewModel(ctx context.Context, source Source) *Model {
	menu := list.New([]list.Item{
		menuItem{view: VenueListView, title: "Venues", desc: "Browse venues by city and state"},
		menuItem{view: ArtistListView, title: "Artists", desc: "Browse artists by name"},
		menuItem{view: ShowListView, title: "Upcoming shows", desc: "Shows that have not started yet"},
	}, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "Fyyur"
	return &Model{
		ctx:     ctx,
		source:  source,
		view:    MenuView,
		menu:    menu,
		venues:  newList("Venues"),
		artists: newList("Artists"),
		shows:   newList("Upcoming Shows"),
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

func newList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	return l
}

// Init has nothing to fetch until a section is opened.
func (m *Model) Init() tea.Cmd {
	return nil
}

// View returns the current view state.
func (m *Model) View() string {
	switch m.view {
	case MenuView:
		return m.renderList(m.menu, m.keys.enter, m.keys.quit)
	case VenueListView:
		return m.renderList(m.venues, m.keys.enter, m.keys.back, m.keys.refresh, m.keys.quit)
	case ArtistListView:
		return m.renderList(m.artists, m.keys.enter, m.keys.back, m.keys.refresh, m.keys.quit)
	case ShowListView:
		return m.renderList(m.shows, m.keys.back, m.keys.refresh, m.keys.quit)
	case DetailView:
		return m.renderDetail()
	case ConfirmView:
		return m.renderConfirm()
	default:
		return ""
	}
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range []*list.Model{&m.menu, &m.venues, &m.artists, &m.shows} {
			l.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeys(msg)
	case Msg:
		return m.handleMsg(msg)
	}
	return m.updateList(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	m.err = msg.err
	if msg.err != nil {
		return m, nil
	}

	switch msg.kind {
	case MsgAreasFetched:
		areas := msg.data.([]listing.Area)
		cmd := m.venues.SetItems(venueItems(areas))
		m.status = fmt.Sprintf("%d areas", len(areas))
		return m, cmd
	case MsgArtistsFetched:
		artists := msg.data.([]models.ArtistSummary)
		cmd := m.artists.SetItems(artistItems(artists))
		m.status = fmt.Sprintf("%d artists", len(artists))
		return m, cmd
	case MsgShowsFetched:
		shows := msg.data.([]listing.UpcomingShow)
		cmd := m.shows.SetItems(showItems(shows))
		m.status = ""
		if len(shows) == 0 {
			m.status = "There are currently no shows listed! Please bear with us."
		}
		return m, cmd
	case MsgDetailFetched:
		m.detail = msg.data
		m.view = DetailView
		return m, nil
	case MsgDeleted:
		m.status = fmt.Sprintf("%s was successfully deleted!", msg.data.(string))
		m.detail = nil
		m.view = m.back
		return m, m.open(m.back)
	}
	return m, nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) && m.view != ConfirmView && !m.filtering() {
		return m, tea.Quit
	}

	switch m.view {
	case MenuView:
		if key.Matches(msg, m.keys.enter) {
			if item, ok := m.menu.SelectedItem().(menuItem); ok {
				m.view = item.view
				m.status = ""
				return m, m.open(item.view)
			}
		}
	case VenueListView, ArtistListView, ShowListView:
		if m.filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.back):
			m.view = MenuView
			m.err = nil
			return m, nil
		case key.Matches(msg, m.keys.refresh):
			return m, m.open(m.view)
		case key.Matches(msg, m.keys.enter):
			return m, m.openSelected()
		}
	case DetailView:
		switch {
		case key.Matches(msg, m.keys.back):
			m.view = m.back
			m.detail = nil
			return m, nil
		case key.Matches(msg, m.keys.del):
			m.view = ConfirmView
			return m, nil
		}
		return m, nil
	case ConfirmView:
		switch {
		case key.Matches(msg, m.keys.yes):
			return m, m.deleteDetail()
		case key.Matches(msg, m.keys.no):
			m.view = DetailView
			return m, nil
		}
		return m, nil
	}

	return m.updateList(msg)
}

func (m *Model) filtering() bool {
	l := m.current()
	return l != nil && l.FilterState() == list.Filtering
}

func (m *Model) current() *list.Model {
	switch m.view {
	case MenuView:
		return &m.menu
	case VenueListView:
		return &m.venues
	case ArtistListView:
		return &m.artists
	case ShowListView:
		return &m.shows
	}
	return nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	l := m.current()
	if l == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return m, cmd
}

func (m *Model) open(view ViewState) tea.Cmd {
	switch view {
	case VenueListView:
		return m.fetchAreas()
	case ArtistListView:
		return m.fetchArtists()
	case ShowListView:
		return m.fetchShows()
	}
	return nil
}

func (m *Model) openSelected() tea.Cmd {
	m.back = m.view
	switch item := m.current().SelectedItem().(type) {
	case venueItem:
		return m.fetchVenue(item.venue.ID)
	case artistItem:
		return m.fetchArtist(item.artist.ID)
	}
	return nil
}

func (m *Model) fetchAreas() tea.Cmd {
	return func() tea.Msg {
		areas, err := m.source.Areas(m.ctx)
		return areasFetchedMsg(areas, err)
	}
}

func (m *Model) fetchArtists() tea.Cmd {
	return func() tea.Msg {
		artists, err := m.source.Artists(m.ctx)
		return artistsFetchedMsg(artists, err)
	}
}

func (m *Model) fetchShows() tea.Cmd {
	return func() tea.Msg {
		shows, err := m.source.UpcomingShows(m.ctx)
		return showsFetchedMsg(shows, err)
	}
}

func (m *Model) fetchVenue(id int64) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.source.VenueDetail(m.ctx, id)
		return detailFetchedMsg(detail, err)
	}
}

func (m *Model) fetchArtist(id int64) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.source.ArtistDetail(m.ctx, id)
		return detailFetchedMsg(detail, err)
	}
}

func (m *Model) deleteDetail() tea.Cmd {
	switch d := m.detail.(type) {
	case *listing.VenueDetail:
		return func() tea.Msg {
			return deletedMsg("Venue "+d.Name, m.source.DeleteVenue(m.ctx, d.ID))
		}
	case *listing.ArtistDetail:
		return func() tea.Msg {
			return deletedMsg("Artist "+d.Name, m.source.DeleteArtist(m.ctx, d.ID))
		}
	}
	return nil
}

func (m *Model) footer(keys ...key.Binding) string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(styles.failure.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(styles.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(styles.help.Render(m.help.ShortHelpView(keys)))
	return b.String()
}

func (m *Model) renderList(l list.Model, keys ...key.Binding) string {
	return fmt.Sprintf("%s\n\n%s", l.View(), m.footer(keys...))
}

func (m *Model) renderDetail() string {
	var b strings.Builder
	switch d := m.detail.(type) {
	case *listing.VenueDetail:
		b.WriteString(styles.title.Render(d.Name))
		fmt.Fprintf(&b, "\n%s, %s\n%s\n", d.City, d.State, d.Address)
		writeProfile(&b, d.Phone, d.Website, d.Genres, d.SeekingTalent, "talent", d.SeekingDescription)
		writeShows(&b, true, d.UpcomingShowsCount, artistLines(d.UpcomingShows))
		writeShows(&b, false, d.PastShowsCount, artistLines(d.PastShows))
	case *listing.ArtistDetail:
		b.WriteString(styles.title.Render(d.Name))
		fmt.Fprintf(&b, "\n%s, %s\n", d.City, d.State)
		writeProfile(&b, d.Phone, d.Website, d.Genres, d.SeekingVenue, "venues", d.SeekingDescription)
		writeShows(&b, true, d.UpcomingShowsCount, venueLines(d.UpcomingShows))
		writeShows(&b, false, d.PastShowsCount, venueLines(d.PastShows))
	}
	return fmt.Sprintf("%s\n%s", b.String(), m.footer(m.keys.back, m.keys.del, m.keys.quit))
}

func (m *Model) renderConfirm() string {
	var name string
	switch d := m.detail.(type) {
	case *listing.VenueDetail:
		name = "venue " + d.Name
	case *listing.ArtistDetail:
		name = "artist " + d.Name
	}
	title := styles.confirm.Render(fmt.Sprintf("Delete %s and all of its shows?", name))
	return fmt.Sprintf("%s\n\n%s", title, m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no}))
}

func writeProfile(b *strings.Builder, phone, website string, genres models.Genres, seeking models.Seeking, what, desc string) {
	if phone != "" {
		fmt.Fprintf(b, "Phone: %s\n", phone)
	}
	if website != "" {
		fmt.Fprintf(b, "Website: %s\n", website)
	}
	if len(genres) > 0 {
		fmt.Fprintf(b, "Genres: %s\n", strings.Join(genres, ", "))
	}
	if seeking.Bool() {
		b.WriteString(styles.seeking.Render("Seeking " + what))
		if desc != "" {
			fmt.Fprintf(b, ": %s", desc)
		}
		b.WriteString("\n")
	}
}

func writeShows(b *strings.Builder, upcoming bool, count int, lines []string) {
	b.WriteString(styles.showsHeading(upcoming, count))
	b.WriteString("\n")
	for _, line := range lines {
		fmt.Fprintf(b, "  • %s\n", line)
	}
}

func artistLines(shows []listing.ArtistShow) []string {
	lines := make([]string, len(shows))
	for i, s := range shows {
		lines[i] = fmt.Sprintf("%s at %s", s.ArtistName, s.StartTime)
	}
	return lines
}

func venueLines(shows []listing.VenueShow) []string {
	lines := make([]string, len(shows))
	for i, s := range shows {
		lines[i] = fmt.Sprintf("%s at %s", s.VenueName, s.StartTime)
	}
	return lines
}
