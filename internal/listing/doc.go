// Package listing turns rows from the store into the view-models rendered by
// the site's pages.
//
// Everything here is a pure function of its inputs; the reference time is
// always passed in by the caller.
//
//   - [IsUpcoming] and [Partition] classify a record's shows as past or upcoming.
//   - [NewVenueDetail] and [NewArtistDetail] assemble detail pages.
//   - [GroupByArea] groups venues by city and state for the venue listing.
//   - [Search] shapes substring search results.
//   - [Upcoming] builds the global upcoming shows listing.
package listing
