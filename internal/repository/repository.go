// Package repository handles all interactions with the database.
//
// It contains the parameterized SQL statements behind every GraphQL field
// and maps rows onto model types, abstracting SQL away from the service
// layer. Errors are returned raw (wrapped with context); translating them
// into client errors is the service layer's job.
package repository

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// notFound tags pgx.ErrNoRows with the table name so sqlerr.HandleError
// can phrase "<Entity> not found".
func notFound(table string) error {
	return fmt.Errorf("table:%s: %w", table, pgx.ErrNoRows)
}
