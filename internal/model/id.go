package model

import "github.com/google/uuid"

// NewID returns a fresh identifier with the given prefix. Version 7 UUIDs
// are used when available so generated identifiers sort by creation time.
func NewID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	if prefix == "" {
		return id.String()
	}
	return prefix + "_" + id.String()
}
