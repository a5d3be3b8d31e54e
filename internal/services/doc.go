// Package services applies the booking rules on top of the repositories.
//
// A [Catalog] is bound to one request-scoped [repositories.Session]. It reads
// records and assembles the listing view-models, and it runs every write
// inside a single transaction on that session.
//
// # Error classes
//
// Writes fail in one of two ways. An [EndpointError] is a business-rule
// rejection: a show referenced an artist or venue that does not exist, and
// nothing was written. A [PersistenceError] wraps any other failure during a
// write; its transaction was rolled back and [PersistenceError.Message] is
// the only text shown to the user.
//
// Detail lookups return the repository error unchanged. Callers treat every
// detail failure as a missing page.
package services
