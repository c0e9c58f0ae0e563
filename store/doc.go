// Package store defines the Persistence collaborator through which grid views
// and randomization runs are saved and loaded.
//
// Records carry matrices and presence indices already encoded in the
// versioned formats of package matrix, so a Persistence implementation only
// moves bytes. Memory is an in-process implementation; package store/sqlite
// provides a durable one.
package store
