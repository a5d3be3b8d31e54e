package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// FlashCookie holds messages queued for the next page the browser loads.
const FlashCookie = "fyyur_flash"

// Flash queues messages for the next rendered page.
//
// Messages already queued on the response are replaced.
func Flash(w http.ResponseWriter, messages ...string) {
	if len(messages) == 0 {
		return
	}

	raw, err := json.Marshal(messages)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flashes returns the queued messages and clears the cookie.
//
// A missing or unreadable cookie yields no messages.
func Flashes(w http.ResponseWriter, r *http.Request) []string {
	cookie, err := r.Cookie(FlashCookie)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var messages []string
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil
	}
	return messages
}
