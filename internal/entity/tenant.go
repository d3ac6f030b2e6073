package entity

import "time"

// Tenant is one customer organization of the console.
type Tenant struct {
	ID        string
	Name      string
	Slug      string
	Plan      string // "free", "team", "enterprise"
	Active    bool
	CreatedAt time.Time
}
