package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/server"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

// Options configures [NewRouter].
type Options struct {
	DB     *sqlx.DB
	Logger *log.Logger
	// Now is the clock shows are classified against. Nil means [time.Now].
	Now func() time.Time
	// Location reads submitted start times. Nil means [time.Local].
	Location *time.Location
	// Metrics, when set, instruments every route and is served at MetricsPath.
	Metrics     *server.Metrics
	MetricsPath string
}

// App holds what the handlers share.
type App struct {
	db       *sqlx.DB
	renderer *Renderer
	validate *validator.Validate
	logger   *log.Logger
	now      func() time.Time
	loc      *time.Location
}

// NewApp parses the templates and builds the handler set.
func NewApp(opts Options) (*App, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	return &App{
		db:       opts.DB,
		renderer: renderer,
		validate: NewValidator(),
		logger:   opts.Logger,
		now:      opts.Now,
		loc:      opts.Location,
	}, nil
}

// NewRouter builds the site's router with its middleware stack.
func NewRouter(opts Options) (*server.BasicRouter, error) {
	if opts.DB == nil {
		return nil, fmt.Errorf("web: a database is required")
	}

	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	app, err := NewApp(opts)
	if err != nil {
		return nil, err
	}

	router := server.NewBasicRouter()
	router.Use(
		server.RequestLogger(opts.Logger),
		server.Recover(opts.Logger, http.HandlerFunc(app.serverError)),
	)
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.Handle(http.MethodGet, path, opts.Metrics.Handler())
	}

	router.HandleFunc(http.MethodGet, "/health", app.health)
	router.NotFound(http.HandlerFunc(app.notFound))

	router.Use(server.Sessions(opts.DB, opts.Logger, http.HandlerFunc(app.serverError)))
	app.routes(router)
	return router, nil
}

func (a *App) routes(router *server.BasicRouter) {
	router.HandleFunc(http.MethodGet, "/{$}", a.home)

	router.HandleFunc(http.MethodGet, "/venues", a.venues)
	router.HandleFunc(http.MethodPost, "/venues/search", a.searchVenues)
	router.HandleFunc(http.MethodGet, "/venues/create", a.newVenueForm)
	router.HandleFunc(http.MethodPost, "/venues/create", a.createVenue)
	router.HandleFunc(http.MethodGet, "/venues/{id}", a.showVenue)
	router.HandleFunc(http.MethodDelete, "/venues/{id}", a.deleteVenue)
	router.HandleFunc(http.MethodPost, "/venues/{id}/delete", a.deleteVenueForm)
	router.HandleFunc(http.MethodGet, "/venues/{id}/edit", a.editVenueForm)
	router.HandleFunc(http.MethodPost, "/venues/{id}/edit", a.updateVenue)

	router.HandleFunc(http.MethodGet, "/artists", a.artists)
	router.HandleFunc(http.MethodPost, "/artists/search", a.searchArtists)
	router.HandleFunc(http.MethodGet, "/artists/create", a.newArtistForm)
	router.HandleFunc(http.MethodPost, "/artists/create", a.createArtist)
	router.HandleFunc(http.MethodGet, "/artists/{id}", a.showArtist)
	router.HandleFunc(http.MethodDelete, "/artists/{id}", a.deleteArtist)
	router.HandleFunc(http.MethodPost, "/artists/{id}/delete", a.deleteArtistForm)
	router.HandleFunc(http.MethodGet, "/artists/{id}/edit", a.editArtistForm)
	router.HandleFunc(http.MethodPost, "/artists/{id}/edit", a.updateArtist)

	router.HandleFunc(http.MethodGet, "/shows", a.shows)
	router.HandleFunc(http.MethodGet, "/shows/create", a.newShowForm)
	router.HandleFunc(http.MethodPost, "/shows/create", a.createShow)
}
