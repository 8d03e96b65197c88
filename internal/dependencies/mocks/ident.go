package mocks

import (
	"fmt"

	"github.com/jlattimer/skillrank/internal/dependencies/ident"
)

// MockIdent is a mock implementation of Ident that mints sequential IDs
type MockIdent struct {
	next int
}

// Ensure MockIdent implements Ident
var _ ident.Ident = (*MockIdent)(nil)

// NewMockIdent creates a MockIdent starting from id-1
func NewMockIdent() *MockIdent {
	return &MockIdent{}
}

// NewID returns the next sequential ID
func (i *MockIdent) NewID() string {
	i.next++
	return fmt.Sprintf("id-%d", i.next)
}
