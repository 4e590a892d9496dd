package domain

import "time"

// Account is a general-ledger account referenced by accounting rules.
// Immutable reference data: the engine reads accounts, it never mutates
// them.
type Account struct {
	CreatedAt time.Time
	ID        string
	Number    string
	Label     string
	Currency  string
}
