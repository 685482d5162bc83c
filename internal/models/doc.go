// Package models defines the Coach Assistant domain entities exchanged with the
// remote backend.
//
// All entities are owned by the backend; local copies are caches invalidated by
// refetch. JSON tags follow the backend's French field naming
// (nom, prenom, groupe, ...).
package models
