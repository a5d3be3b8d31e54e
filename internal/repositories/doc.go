// Package repositories implements SQLite persistence for venues, artists, and shows.
//
// Every HTTP request works through one [Session]: a single pooled connection
// acquired when the request starts and released when it ends. Writes that
// touch more than one statement run inside [Session.InTx] on that connection.
//
// Key Implementations:
//   - [VenueRepository] : venue rows, area ordering, and id/name summaries
//   - [ArtistRepository] : artist rows and id/name summaries
//   - [ShowRepository] : show rows and the joined [models.ShowDetail] listings
//
// Listing queries always carry an explicit id tiebreaker so results are
// deterministic.
package repositories
