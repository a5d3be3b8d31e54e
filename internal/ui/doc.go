// Package ui implements an interactive terminal browser of the booking catalog using bubbletea's Elm architecture.
//
// The TUI offers these views:
//  1. [MenuView] : pick a section
//  2. [VenueListView] : venues grouped by city and state
//  3. [ArtistListView] : artists ordered by name
//  4. [ShowListView] : upcoming shows in start order
//  5. [DetailView] : a venue or artist page with past and upcoming shows
//  6. [ConfirmView] : confirm deleting the open venue or artist
//
// The (view) [Model] implements bubbletea's Init/Update/View pattern, receiving fetch results via the Msg union type.
package ui
