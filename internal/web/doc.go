// Package web serves the booking site's HTML pages.
//
// [NewRouter] wires every route onto a [server.BasicRouter]:
//
//	GET    /                          landing page
//	GET    /venues                    venues grouped by city and state
//	POST   /venues/search             case-insensitive name search
//	GET    /venues/{id}               venue page with past and upcoming shows
//	GET    /venues/create             new venue form (POST submits)
//	GET    /venues/{id}/edit          pre-populated edit form (POST submits)
//	DELETE /venues/{id}               delete, answers {"success": true}
//	POST   /venues/{id}/delete        delete from the venue page's button
//	GET    /shows                     upcoming shows
//	GET    /shows/create              new show form (POST submits)
//	GET    /health                    liveness
//	GET    /metrics                   Prometheus metrics, when enabled
//
// Artists mirror the venue routes under /artists.
//
// Pages are html/template files embedded in the binary. Listing, search, and
// detail routes answer JSON instead when the request's Accept header asks for
// application/json.
//
// Every page route runs inside [server.Sessions], so handlers get their
// [services.Catalog] from the request's session. Writes redirect with a flash
// message. Internal errors are logged and never shown to the user.
package web
