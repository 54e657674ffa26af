package utils

import "github.com/google/uuid"

// IDGenerator produces unique identifiers used to correlate a client-facing
// error with the server-side log entry describing it.
type IDGenerator interface {
	Generate() string
}

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4
// if the v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewCorrelationID is a shortcut for NewUUIDGenerator().Generate().
func NewCorrelationID() string {
	return NewUUIDGenerator().Generate()
}
