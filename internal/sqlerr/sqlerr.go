// Package sqlerr handles database driver errors.
//
// It parses cryptic SQLSTATE codes from the Postgres driver and converts
// them into user-friendly application errors (e.g. converting a foreign
// key violation into a Bad Request error).
package sqlerr
