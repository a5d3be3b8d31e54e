package web

import (
	"errors"
	"net/http"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/services"
)

func (a *App) shows(w http.ResponseWriter, r *http.Request) {
	catalog, err := a.catalog(r)
	if err != nil {
		a.log(r).Error("failed to open catalog", "error", err)
		a.serverError(w, r)
		return
	}

	shows, err := catalog.UpcomingShows(r.Context())
	if err != nil {
		a.log(r).Error("failed to list shows", "error", err)
		a.serverError(w, r)
		return
	}

	var advisory []string
	if len(shows) == 0 {
		advisory = append(advisory, noShowsMessage)
	}
	a.reply(w, r, "shows", "Shows", shows, shows, advisory...)
}

// showFormPage is the data of the show form template.
type showFormPage struct {
	Form   ShowForm
	Errors FormErrors
}

func (a *App) newShowForm(w http.ResponseWriter, r *http.Request) {
	form := ShowForm{StartTime: a.now().In(a.loc).Format(ShowFormTimeLayout)}
	a.render(w, r, http.StatusOK, "show_form", "New show", showFormPage{Form: form})
}

func (a *App) createShow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.render(w, r, http.StatusBadRequest, "show_form", "New show",
			showFormPage{Errors: FormErrors{"form": "the form could not be read"}})
		return
	}

	form := DecodeShowForm(r.PostForm)
	show, errs := form.Show(a.validate, a.loc)
	if len(errs) > 0 {
		a.render(w, r, http.StatusUnprocessableEntity, "show_form", "New show", showFormPage{Form: form, Errors: errs})
		return
	}

	catalog, err := a.catalog(r)
	if err == nil {
		err = catalog.CreateShow(r.Context(), &show)
	}

	var rejected *services.EndpointError
	switch {
	case errors.As(err, &rejected):
		a.log(r).Info("show rejected", "artist_id", show.ArtistID, "venue_id", show.VenueID, "reason", rejected)
		a.redirect(w, r, "/shows/create", rejected.Message())
	case err != nil:
		a.log(r).Error("failed to create show", "artist_id", show.ArtistID, "venue_id", show.VenueID, "error", err)
		a.redirect(w, r, "/shows/create", failure(err, services.KindShow, "", services.OpCreate))
	default:
		a.log(r).Info("show created", "id", show.ID)
		a.redirect(w, r, "/", services.SuccessMessage(services.KindShow, "", services.OpCreate))
	}
}
