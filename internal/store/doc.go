// Package store defines the persistence interfaces and errors shared by
// every storage backend, plus the transaction helper used by services.
package store
