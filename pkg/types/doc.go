// Package types defines the entity types, the Store interface, and the
// standard errors for the Gestoque ledger core.
//
// JSON tags preserve the Portuguese field names of the on-disk and backup
// wire format; Go identifiers are English.
package types
