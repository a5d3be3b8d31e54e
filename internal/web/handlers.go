package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/repositories"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/server"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/services"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
	"github.com/charmbracelet/log"
)

const (
	venueNotFoundMessage  = "An error occurred. Venue page does not exist!"
	artistNotFoundMessage = "An error occurred. Artist page does not exist!"
	noShowsMessage        = "There are currently no shows listed! Please bear with us."
)

var errNoSession = errors.New("request has no database session")

func (a *App) log(r *http.Request) *log.Logger {
	return server.LoggerFrom(r.Context(), a.logger)
}

func (a *App) catalog(r *http.Request) (*services.Catalog, error) {
	session, ok := repositories.SessionFrom(r.Context())
	if !ok {
		return nil, errNoSession
	}
	return services.NewCatalog(session, a.now), nil
}

// render writes a full page. Flashes queued by the previous response come first.
func (a *App) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any, flashes ...string) {
	page := Page{
		Title:   title,
		Flashes: append(server.Flashes(w, r), flashes...),
		Data:    data,
	}

	var buf bytes.Buffer
	if err := a.renderer.Render(&buf, name, page); err != nil {
		a.log(r).Error("failed to render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (a *App) redirect(w http.ResponseWriter, r *http.Request, to string, messages ...string) {
	server.Flash(w, messages...)
	http.Redirect(w, r, to, http.StatusSeeOther)
}

func (a *App) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		a.log(r).Error("failed to encode response", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func pathID(r *http.Request) (int64, error) {
	return parseID(r.PathValue("id"))
}

// failure picks the user-facing text of a failed write.
func failure(err error, kind services.Kind, name string, op services.Operation) string {
	var pe *services.PersistenceError
	if errors.As(err, &pe) {
		return pe.Message()
	}
	return (&services.PersistenceError{Kind: kind, Name: name, Op: op}).Message()
}

// lookupFailed logs detail-page failures that are not a plain missing row.
func (a *App) lookupFailed(r *http.Request, err error) {
	if errors.Is(err, shared.ErrVenueNotFound) || errors.Is(err, shared.ErrArtistNotFound) {
		return
	}
	a.log(r).Error("failed to load record", "path", r.URL.Path, "error", err)
}

func (a *App) serverError(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusInternalServerError, "500", "Server Error", nil)
}

func (a *App) notFound(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusNotFound, "404", "Not Found", nil)
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	if err := a.db.PingContext(r.Context()); err != nil {
		a.log(r).Error("health check failed", "error", err)
		a.writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	a.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) home(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "home", "", nil)
}

// searchPage is the data of the search results template.
type searchPage struct {
	Term  string
	Count int
	Rows  any
	Base  string
}

// reply answers JSON or renders the page, depending on the Accept header.
func (a *App) reply(w http.ResponseWriter, r *http.Request, name, title string, data, payload any, flashes ...string) {
	if wantsJSON(r) {
		a.writeJSON(w, r, http.StatusOK, payload)
		return
	}
	a.render(w, r, http.StatusOK, name, title, data, flashes...)
}

func (a *App) venues(w http.ResponseWriter, r *http.Request) {
	catalog, err := a.catalog(r)
	if err != nil {
		a.log(r).Error("failed to open catalog", "error", err)
		a.serverError(w, r)
		return
	}

	areas, err := catalog.Areas(r.Context())
	if err != nil {
		a.log(r).Error("failed to list venues", "error", err)
		a.serverError(w, r)
		return
	}
	a.reply(w, r, "venues", "Venues", areas, areas)
}

func (a *App) searchVenues(w http.ResponseWriter, r *http.Request) {
	catalog, err := a.catalog(r)
	if err != nil {
		a.log(r).Error("failed to open catalog", "error", err)
		a.serverError(w, r)
		return
	}

	term := r.PostFormValue("search_term")
	result, err := catalog.SearchVenues(r.Context(), term)
	if err != nil {
		a.log(r).Error("failed to search venues", "term", term, "error", err)
		a.serverError(w, r)
		return
	}

	page := searchPage{Term: term, Count: result.Count, Rows: result.Data, Base: "/venues"}
	a.reply(w, r, "search", "Venue search", page, result)
}

func (a *App) showVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.redirect(w, r, "/", venueNotFoundMessage)
		return
	}

	catalog, err := a.catalog(r)
	if err != nil {
		a.log(r).Error("failed to open catalog", "error", err)
		a.redirect(w, r, "/", venueNotFoundMessage)
		return
	}

	detail, err := catalog.VenueDetail(r.Context(), id)
	if err != nil {
		a.lookupFailed(r, err)
		a.redirect(w, r, "/", venueNotFoundMessage)
		return
	}
	a.reply(w, r, "venue", detail.Name, detail, detail)
}

// venueFormPage is the data of the venue form template.
type venueFormPage struct {
	Heading string
	Action  string
	Submit  string
	Form    VenueForm
	Errors  FormErrors
	States  []string
	Genres  []string
}

func newVenueFormPage(form VenueForm, errs FormErrors) venueFormPage {
	return venueFormPage{
		Heading: "List a new venue",
		Action:  "/venues/create",
		Submit:  "Create Venue",
		Form:    form,
		Errors:  errs,
		States:  models.States,
		Genres:  models.GenreChoices,
	}
}

func editVenueFormPage(id int64, form VenueForm, errs FormErrors) venueFormPage {
	page := newVenueFormPage(form, errs)
	page.Heading = "Edit venue " + form.Name
	page.Action = "/venues/" + strconv.FormatInt(id, 10) + "/edit"
	page.Submit = "Save Venue"
	return page
}

func (a *App) newVenueForm(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "venue_form", "New venue", newVenueFormPage(VenueForm{}, nil))
}

func (a *App) createVenue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.render(w, r, http.StatusBadRequest, "venue_form", "New venue",
			newVenueFormPage(VenueForm{}, FormErrors{"form": "the form could not be read"}))
		return
	}

	form, errs := DecodeVenueForm(r.PostForm)
	if errs = form.Validate(a.validate, errs); len(errs) > 0 {
		a.render(w, r, http.StatusUnprocessableEntity, "venue_form", "New venue", newVenueFormPage(form, errs))
		return
	}

	venue := form.Venue()
	catalog, err := a.catalog(r)
	if err == nil {
		err = catalog.CreateVenue(r.Context(), &venue)
	}
	if err != nil {
		a.log(r).Error("failed to create venue", "name", venue.Name, "error", err)
		a.redirect(w, r, "/venues/create", failure(err, services.KindVenue, venue.Name, services.OpCreate))
		return
	}

	a.log(r).Info("venue created", "id", venue.ID, "name", venue.Name)
	a.redirect(w, r, "/", services.SuccessMessage(services.KindVenue, venue.Name, services.OpCreate))
}

func (a *App) editVenueForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.redirect(w, r, "/", venueNotFoundMessage)
		return
	}

	catalog, err := a.catalog(r)
	if err != nil {
		a.log(r).Error("failed to open catalog", "error", err)
		a.redirect(w, r, "/", venueNotFoundMessage)
		return
	}

	venue, err := catalog.Venue(r.Context(), id)
	if err != nil {
		a.lookupFailed(r, err)
		a.redirect(w, r, "/", venueNotFoundMessage)
		return
	}

	a.render(w, r, http.StatusOK, "venue_form", "Edit venue", editVenueFormPage(id, VenueFormFrom(*venue), nil))
}

func (a *App) updateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.redirect(w, r, "/", venueNotFoundMessage)
		return
	}

	if err := r.ParseForm(); err != nil {
		a.render(w, r, http.StatusBadRequest, "venue_form", "Edit venue",
			editVenueFormPage(id, VenueForm{}, FormErrors{"form": "the form could not be read"}))
		return
	}

	form, errs := DecodeVenueForm(r.PostForm)
	if errs = form.Validate(a.validate, errs); len(errs) > 0 {
		a.render(w, r, http.StatusUnprocessableEntity, "venue_form", "Edit venue", editVenueFormPage(id, form, errs))
		return
	}

	venue := form.Venue()
	venue.ID = id
	catalog, err := a.catalog(r)
	if err == nil {
		err = catalog.UpdateVenue(r.Context(), &venue)
	}

	editPath := "/venues/" + strconv.FormatInt(id, 10) + "/edit"
	if err != nil {
		a.log(r).Error("failed to update venue", "id", id, "error", err)
		a.redirect(w, r, editPath, failure(err, services.KindVenue, venue.Name, services.OpUpdate))
		return
	}

	a.log(r).Info("venue updated", "id", id)
	a.redirect(w, r, "/venues/"+strconv.FormatInt(id, 10),
		services.SuccessMessage(services.KindVenue, venue.Name, services.OpUpdate))
}

// deleteVenue answers the DELETE route used by the venue page's script.
func (a *App) deleteVenue(w http.ResponseWriter, r *http.Request) {
	if err := a.removeVenue(r); err != nil {
		a.redirect(w, r, "/", failure(err, services.KindVenue, "", services.OpDelete))
		return
	}

	server.Flash(w, services.SuccessMessage(services.KindVenue, "", services.OpDelete))
	a.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

// deleteVenueForm answers the delete button's POST.
func (a *App) deleteVenueForm(w http.ResponseWriter, r *http.Request) {
	if err := a.removeVenue(r); err != nil {
		a.redirect(w, r, "/venues/"+r.PathValue("id"), failure(err, services.KindVenue, "", services.OpDelete))
		return
	}
	a.redirect(w, r, "/", services.SuccessMessage(services.KindVenue, "", services.OpDelete))
}

func (a *App) removeVenue(r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return shared.ErrVenueNotFound
	}

	catalog, err := a.catalog(r)
	if err == nil {
		err = catalog.DeleteVenue(r.Context(), id)
	}
	if err != nil {
		a.log(r).Error("failed to delete venue", "id", id, "error", err)
		return err
	}

	a.log(r).Info("venue deleted", "id", id)
	return nil
}
