// Package model holds the domain types stored in PostgreSQL.
//
// Field tags name the database columns so rows can be scanned with
// pgx.RowToStructByName.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Member is a registered rider.
type Member struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	FirstName string    `db:"firstname"`
	LastName  string    `db:"lastname"`
	Birthdate time.Time `db:"birthdate"`
}

// Ride is a single ride logged by a member. Started and Ended are calendar
// dates; their time part is always midnight UTC.
type Ride struct {
	ID          uuid.UUID `db:"id"`
	Rider       uuid.UUID `db:"rider"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Distance    int32     `db:"distance"`
	Started     time.Time `db:"started"`
	Ended       time.Time `db:"ended"`
}
