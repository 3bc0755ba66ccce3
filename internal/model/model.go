// Package model defines the persistent entities of the catalog.
//
// The structs double as GORM schema definitions and JSON response
// shapes; the API exposes them directly, so tags here are part of the
// external contract.
package model
