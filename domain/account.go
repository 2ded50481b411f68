package domain

import "time"

// Account is a registered user. The password is stored and compared as an
// opaque string, exactly as supplied at registration; accounts are never
// mutated or deleted once created.
type Account struct {
	Username  string
	Password  string
	CreatedAt time.Time
}
