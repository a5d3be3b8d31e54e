// package repositories provides persistence layer implementations for all model types.
package repositories

import (
	"context"
	"fmt"

	"github.com/IvanCheng1/Venue-Booking-Site/internal/shared"
	"github.com/jmoiron/sqlx"
)

// Querier is satisfied by [sqlx.DB], [sqlx.Conn], and [sqlx.Tx].
type Querier interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// Store groups the repositories bound to one [Querier].
type Store struct {
	Venues  *VenueRepository
	Artists *ArtistRepository
	Shows   *ShowRepository
}

// NewStore binds every repository to q.
func NewStore(q Querier) Store {
	return Store{
		Venues:  NewVenueRepository(q),
		Artists: NewArtistRepository(q),
		Shows:   NewShowRepository(q),
	}
}

// Session is a request-scoped connection to the database.
type Session struct {
	conn *sqlx.Conn
}

// Acquire takes one connection from the pool. Callers must Close the session on every exit path.
func Acquire(ctx context.Context, db *sqlx.DB) (*Session, error) {
	conn, err := db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to acquire connection: %v", shared.ErrPersistence, err)
	}
	return &Session{conn: conn}, nil
}

// Close returns the connection to the pool.
func (s *Session) Close() error {
	return s.conn.Close()
}

// Store returns repositories bound to the session's connection outside any transaction.
func (s *Session) Store() Store {
	return NewStore(s.conn)
}

// InTx runs fn inside one transaction on the session's connection.
//
// The transaction commits when fn returns nil and rolls back otherwise, so
// partial writes are never visible.
func (s *Session) InTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", shared.ErrPersistence, err)
	}

	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if err := fn(NewStore(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", shared.ErrPersistence, err)
	}
	committed = true
	return nil
}
