// Package pgsql holds the hand-written SQL statements and their row types. Repositories
// and read stores call it with whatever DBTX they run on.
package pgsql

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
