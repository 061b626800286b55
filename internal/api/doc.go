// Package api contains the HTTP handlers, request/response models and the
// error-to-status translation for the user endpoints.
package api
