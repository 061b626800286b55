// Package service contains the business operations over the domain
// entities, each parameterized by a store and scoped to one database
// session per call.
package service
