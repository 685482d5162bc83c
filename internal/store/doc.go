// Package store provides durable local state backed by SQLite: the bearer
// token that survives process restarts, and an opt-in roster cache for
// offline athlete listing.
//
// The backend remains the source of truth for all domain data; everything in
// this package is a cache or credential, never an authority.
package store
