// Package logger provides structured logging setup and context propagation
// for request-scoped loggers.
package logger
