// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// standardized implementations are shared so mock behavior stays consistent
// across test packages.
package mocks
