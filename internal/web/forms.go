package web

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/models"
	"github.com/go-playground/validator/v10"
)

// FormErrors maps a form field name to its message.
type FormErrors map[string]string

func (e FormErrors) add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// showTimeLayouts are the start_time inputs accepted from the show form.
var showTimeLayouts = []string{
	"2006-01-02 15:04:05.000000",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ShowFormTimeLayout pre-fills the start_time field.
const ShowFormTimeLayout = "2006-01-02 15:04:05"

// VenueForm is the create/edit form of a venue.
type VenueForm struct {
	Name               string         `form:"name" validate:"required,max=120"`
	City               string         `form:"city" validate:"required,max=120"`
	State              string         `form:"state" validate:"required,state"`
	Address            string         `form:"address" validate:"required,max=120"`
	Phone              string         `form:"phone" validate:"max=120"`
	Genres             []string       `form:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string         `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string         `form:"facebook_link" validate:"omitempty,url,max=500"`
	Website            string         `form:"website" validate:"omitempty,url"`
	SeekingTalent      models.Seeking `form:"seeking_talent"`
	SeekingDescription string         `form:"seeking_description"`
}

// ArtistForm is the create/edit form of an artist.
type ArtistForm struct {
	Name               string         `form:"name" validate:"required,max=120"`
	City               string         `form:"city" validate:"required,max=120"`
	State              string         `form:"state" validate:"required,state"`
	Phone              string         `form:"phone" validate:"max=120"`
	Genres             []string       `form:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string         `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string         `form:"facebook_link" validate:"omitempty,url,max=500"`
	Website            string         `form:"website" validate:"omitempty,url"`
	SeekingVenue       models.Seeking `form:"seeking_venue"`
	SeekingDescription string         `form:"seeking_description"`
}

// ShowForm is the create form of a show. The raw fields are kept for re-rendering.
type ShowForm struct {
	ArtistID  string `form:"artist_id" validate:"required"`
	VenueID   string `form:"venue_id" validate:"required"`
	StartTime string `form:"start_time" validate:"required"`
}

// HasGenre reports whether the form selected genre.
func (f VenueForm) HasGenre(genre string) bool { return has(f.Genres, genre) }

// HasGenre reports whether the form selected genre.
func (f ArtistForm) HasGenre(genre string) bool { return has(f.Genres, genre) }

func has(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// NewValidator returns a validator that knows the state and genre tags and
// reports fields by their form names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
		return models.IsState(fl.Field().String())
	})
	v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return models.IsGenre(fl.Field().String())
	})
	return v
}

// DecodeVenueForm reads a submitted venue form. Values are kept as submitted and
// absent fields take their zero value.
func DecodeVenueForm(values url.Values) (VenueForm, FormErrors) {
	errs := FormErrors{}
	f := VenueForm{
		Name:               values.Get("name"),
		City:               values.Get("city"),
		State:              values.Get("state"),
		Address:            values.Get("address"),
		Phone:              values.Get("phone"),
		Genres:             genres(values),
		ImageLink:          values.Get("image_link"),
		FacebookLink:       values.Get("facebook_link"),
		Website:            values.Get("website"),
		SeekingDescription: values.Get("seeking_description"),
	}
	f.SeekingTalent = seeking(values, "seeking_talent", errs)
	return f, errs
}

// DecodeArtistForm reads a submitted artist form. Absent fields take their zero value.
func DecodeArtistForm(values url.Values) (ArtistForm, FormErrors) {
	errs := FormErrors{}
	f := ArtistForm{
		Name:               values.Get("name"),
		City:               values.Get("city"),
		State:              values.Get("state"),
		Phone:              values.Get("phone"),
		Genres:             genres(values),
		ImageLink:          values.Get("image_link"),
		FacebookLink:       values.Get("facebook_link"),
		Website:            values.Get("website"),
		SeekingDescription: values.Get("seeking_description"),
	}
	f.SeekingVenue = seeking(values, "seeking_venue", errs)
	return f, errs
}

// DecodeShowForm reads a submitted show form.
func DecodeShowForm(values url.Values) ShowForm {
	return ShowForm{
		ArtistID:  strings.TrimSpace(values.Get("artist_id")),
		VenueID:   strings.TrimSpace(values.Get("venue_id")),
		StartTime: strings.TrimSpace(values.Get("start_time")),
	}
}

func genres(values url.Values) []string {
	out := []string{}
	for _, g := range values["genres"] {
		if g != "" {
			out = append(out, g)
		}
	}
	return out
}

func seeking(values url.Values, field string, errs FormErrors) models.Seeking {
	raw, present := values[field]
	value := ""
	if present && len(raw) > 0 {
		value = raw[0]
	}

	flag, err := models.SeekingFromForm(present, value)
	if err != nil {
		errs.add(field, field+" must be checked or left blank")
	}
	return flag
}

// Validate checks the venue form, merging into errs.
func (f VenueForm) Validate(v *validator.Validate, errs FormErrors) FormErrors {
	collect(v.Struct(f), errs)
	return errs
}

// Validate checks the artist form, merging into errs.
func (f ArtistForm) Validate(v *validator.Validate, errs FormErrors) FormErrors {
	collect(v.Struct(f), errs)
	return errs
}

// Show validates the form and converts it, reading start_time in loc.
func (f ShowForm) Show(v *validator.Validate, loc *time.Location) (models.Show, FormErrors) {
	errs := FormErrors{}
	collect(v.Struct(f), errs)

	var s models.Show
	if _, ok := errs["artist_id"]; !ok {
		id, err := parseID(f.ArtistID)
		if err != nil {
			errs.add("artist_id", "artist_id must be a positive number")
		}
		s.ArtistID = id
	}
	if _, ok := errs["venue_id"]; !ok {
		id, err := parseID(f.VenueID)
		if err != nil {
			errs.add("venue_id", "venue_id must be a positive number")
		}
		s.VenueID = id
	}
	if _, ok := errs["start_time"]; !ok {
		start, err := parseStartTime(f.StartTime, loc)
		if err != nil {
			errs.add("start_time", "start_time must look like "+ShowFormTimeLayout)
		}
		s.StartTime = start
	}
	return s, errs
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("id %d is not positive", id)
	}
	return id, nil
}

func parseStartTime(raw string, loc *time.Location) (time.Time, error) {
	for _, layout := range showTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised start time %q", raw)
}

func collect(err error, errs FormErrors) {
	if err == nil {
		return
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		errs.add("form", err.Error())
		return
	}

	for _, fe := range invalid {
		field, _, _ := strings.Cut(fe.Field(), "[")
		errs.add(field, message(field, fe))
	}
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " needs at least " + fe.Param() + " choice"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "url":
		return field + " must be a valid URL"
	case "state":
		return field + " must be a US state code"
	case "genre":
		return field + " must be one of the listed genres"
	}
	return field + " is invalid"
}

// Venue converts the form. The caller sets the ID on edit.
func (f VenueForm) Venue() models.Venue {
	return models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             models.Genres(append([]string{}, f.Genres...)),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

// Artist converts the form. The caller sets the ID on edit.
func (f ArtistForm) Artist() models.Artist {
	return models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             models.Genres(append([]string{}, f.Genres...)),
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

// VenueFormFrom pre-populates an edit form from a stored venue.
func VenueFormFrom(v models.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             append([]string{}, v.Genres...),
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// ArtistFormFrom pre-populates an edit form from a stored artist.
func ArtistFormFrom(a models.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             append([]string{}, a.Genres...),
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}
