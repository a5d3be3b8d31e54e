// Package server provides HTTP routing, middleware, and the listening server for the booking site.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method-qualified patterns
// such as "GET /venues/{id}", and an optional [BasicRouter.NotFound] page for unmatched requests.
//
// # Middleware
//
//   - [RequestLogger] assigns a request id (uuid) and logs each request with charmbracelet/log
//   - [Recover] turns panics into the 500 page
//   - [Metrics] counts requests and observes latency with Prometheus
//   - [Sessions] acquires one database session per request and always releases it
//
// # Flash Messages
//
// [Flash] and [Flashes] carry one-shot user messages across a redirect in a cookie.
package server
