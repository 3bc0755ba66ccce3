// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from handlers, enforces the rules that span entities
// (foreign-key existence, partial-update semantics), and calls
// repository methods to touch the data.
package service
