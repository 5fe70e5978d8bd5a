package utils

import "github.com/google/uuid"

// UUIDGenerator produces collision-resistant identifiers used for trace ids
// and stored media file names. UUIDv7 is preferred for its time-ordered
// prefix; on the (practically impossible) v7 failure it falls back to v4.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
