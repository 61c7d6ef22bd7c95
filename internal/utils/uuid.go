// Package utils holds small helpers shared by tabkeeper packages: JSON
// responses for the daemon API, the resty client the adapters build on and
// folder id generation.
package utils

import "github.com/google/uuid"

// UUIDGenerator issues folder ids. Version 7 ids sort by creation time, so
// the folder list keeps its insertion order when ordered by id.
type UUIDGenerator struct{}

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
