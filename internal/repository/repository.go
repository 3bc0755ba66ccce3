// Package repository handles all interactions with the database.
//
// It contains the ORM queries and methods to fetch, persist, or update
// data, abstracting persistence details away from the service layer.
package repository
