package web

import (
	"net/http"
	"strconv"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/server"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/services"
	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
)

func (a *App) artists(w http.ResponseWriter, r *http.Request) {
	catalog, err := a.catalog(r)
	if err != nil {
		a.log(r).Error("failed to open catalog", "error", err)
		a.serverError(w, r)
		return
	}

	artists, err := catalog.Artists(r.Context())
	if err != nil {
		a.log(r).Error("failed to list artists", "error", err)
		a.serverError(w, r)
		return
	}
	a.reply(w, r, "artists", "Artists", artists, artists)
}

func (a *App) searchArtists(w http.ResponseWriter, r *http.Request) {
	catalog, err := a.catalog(r)
	if err != nil {
		a.log(r).Error("failed to open catalog", "error", err)
		a.serverError(w, r)
		return
	}

	term := r.PostFormValue("search_term")
	result, err := catalog.SearchArtists(r.Context(), term)
	if err != nil {
		a.log(r).Error("failed to search artists", "term", term, "error", err)
		a.serverError(w, r)
		return
	}

	page := searchPage{Term: term, Count: result.Count, Rows: result.Data, Base: "/artists"}
	a.reply(w, r, "search", "Artist search", page, result)
}

func (a *App) showArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.redirect(w, r, "/", artistNotFoundMessage)
		return
	}

	catalog, err := a.catalog(r)
	if err != nil {
		a.log(r).Error("failed to open catalog", "error", err)
		a.redirect(w, r, "/", artistNotFoundMessage)
		return
	}

	detail, err := catalog.ArtistDetail(r.Context(), id)
	if err != nil {
		a.lookupFailed(r, err)
		a.redirect(w, r, "/", artistNotFoundMessage)
		return
	}
	a.reply(w, r, "artist", detail.Name, detail, detail)
}

// artistFormPage is the data of the artist form template.
type artistFormPage struct {
	Heading string
	Action  string
	Submit  string
	Form    ArtistForm
	Errors  FormErrors
	States  []string
	Genres  []string
}

func newArtistFormPage(form ArtistForm, errs FormErrors) artistFormPage {
	return artistFormPage{
		Heading: "List a new artist",
		Action:  "/artists/create",
		Submit:  "Create Artist",
		Form:    form,
		Errors:  errs,
		States:  models.States,
		Genres:  models.GenreChoices,
	}
}

func editArtistFormPage(id int64, form ArtistForm, errs FormErrors) artistFormPage {
	page := newArtistFormPage(form, errs)
	page.Heading = "Edit artist " + form.Name
	page.Action = "/artists/" + strconv.FormatInt(id, 10) + "/edit"
	page.Submit = "Save Artist"
	return page
}

func (a *App) newArtistForm(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "artist_form", "New artist", newArtistFormPage(ArtistForm{}, nil))
}

func (a *App) createArtist(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.render(w, r, http.StatusBadRequest, "artist_form", "New artist",
			newArtistFormPage(ArtistForm{}, FormErrors{"form": "the form could not be read"}))
		return
	}

	form, errs := DecodeArtistForm(r.PostForm)
	if errs = form.Validate(a.validate, errs); len(errs) > 0 {
		a.render(w, r, http.StatusUnprocessableEntity, "artist_form", "New artist", newArtistFormPage(form, errs))
		return
	}

	artist := form.Artist()
	catalog, err := a.catalog(r)
	if err == nil {
		err = catalog.CreateArtist(r.Context(), &artist)
	}
	if err != nil {
		a.log(r).Error("failed to create artist", "name", artist.Name, "error", err)
		a.redirect(w, r, "/artists/create", failure(err, services.KindArtist, artist.Name, services.OpCreate))
		return
	}

	a.log(r).Info("artist created", "id", artist.ID, "name", artist.Name)
	a.redirect(w, r, "/", services.SuccessMessage(services.KindArtist, artist.Name, services.OpCreate))
}

func (a *App) editArtistForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.redirect(w, r, "/", artistNotFoundMessage)
		return
	}

	catalog, err := a.catalog(r)
	if err != nil {
		a.log(r).Error("failed to open catalog", "error", err)
		a.redirect(w, r, "/", artistNotFoundMessage)
		return
	}

	artist, err := catalog.Artist(r.Context(), id)
	if err != nil {
		a.lookupFailed(r, err)
		a.redirect(w, r, "/", artistNotFoundMessage)
		return
	}

	a.render(w, r, http.StatusOK, "artist_form", "Edit artist", editArtistFormPage(id, ArtistFormFrom(*artist), nil))
}

func (a *App) updateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.redirect(w, r, "/", artistNotFoundMessage)
		return
	}

	if err := r.ParseForm(); err != nil {
		a.render(w, r, http.StatusBadRequest, "artist_form", "Edit artist",
			editArtistFormPage(id, ArtistForm{}, FormErrors{"form": "the form could not be read"}))
		return
	}

	form, errs := DecodeArtistForm(r.PostForm)
	if errs = form.Validate(a.validate, errs); len(errs) > 0 {
		a.render(w, r, http.StatusUnprocessableEntity, "artist_form", "Edit artist", editArtistFormPage(id, form, errs))
		return
	}

	artist := form.Artist()
	artist.ID = id
	catalog, err := a.catalog(r)
	if err == nil {
		err = catalog.UpdateArtist(r.Context(), &artist)
	}

	editPath := "/artists/" + strconv.FormatInt(id, 10) + "/edit"
	if err != nil {
		a.log(r).Error("failed to update artist", "id", id, "error", err)
		a.redirect(w, r, editPath, failure(err, services.KindArtist, artist.Name, services.OpUpdate))
		return
	}

	a.log(r).Info("artist updated", "id", id)
	a.redirect(w, r, "/artists/"+strconv.FormatInt(id, 10),
		services.SuccessMessage(services.KindArtist, artist.Name, services.OpUpdate))
}

// deleteArtist answers the DELETE route used by the artist page's script.
func (a *App) deleteArtist(w http.ResponseWriter, r *http.Request) {
	if err := a.removeArtist(r); err != nil {
		a.redirect(w, r, "/", failure(err, services.KindArtist, "", services.OpDelete))
		return
	}

	server.Flash(w, services.SuccessMessage(services.KindArtist, "", services.OpDelete))
	a.writeJSON(w, r, http.StatusOK, map[string]bool{"success": true})
}

// deleteArtistForm answers the delete button's POST.
func (a *App) deleteArtistForm(w http.ResponseWriter, r *http.Request) {
	if err := a.removeArtist(r); err != nil {
		a.redirect(w, r, "/artists/"+r.PathValue("id"), failure(err, services.KindArtist, "", services.OpDelete))
		return
	}
	a.redirect(w, r, "/", services.SuccessMessage(services.KindArtist, "", services.OpDelete))
}

func (a *App) removeArtist(r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return shared.ErrArtistNotFound
	}

	catalog, err := a.catalog(r)
	if err == nil {
		err = catalog.DeleteArtist(r.Context(), id)
	}
	if err != nil {
		a.log(r).Error("failed to delete artist", "id", id, "error", err)
		return err
	}

	a.log(r).Info("artist deleted", "id", id)
	return nil
}
