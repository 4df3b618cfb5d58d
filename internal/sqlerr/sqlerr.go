// Package sqlerr handles database driver errors.
//
// It parses cryptic error codes from the database driver and
// converts them into client-safe application errors (e.g. a
// "foreign key violation" on ride.rider becomes MEMBER_NOT_FOUND).
package sqlerr
