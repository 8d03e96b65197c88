package ident

import "github.com/google/uuid"

// Ident mints unique identifiers and can be mocked for testing.
// Identifiers are never reused, even after the entity they named is gone.
type Ident interface {
	NewID() string
}

// UUIDIdent implements Ident using random UUIDs
type UUIDIdent struct{}

// New creates a new UUIDIdent
func New() *UUIDIdent {
	return &UUIDIdent{}
}

// NewID returns a new UUID string
func (i *UUIDIdent) NewID() string {
	return uuid.NewString()
}
