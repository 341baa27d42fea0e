// Package gameid generates identifiers for bingo games.
//
// An ID is a UUIDv7 written as 26 lowercase Crockford base32 characters, so
// IDs sort by creation time and stay short enough for log lines.
package gameid

import (
	"encoding/base32"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Crockford's base32, lowercase. Ascending in ASCII so encoded IDs keep the
// byte order of the UUID.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const encodedLen = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// Generate returns a new game ID.
func Generate() string {
	return Encode(uuid.Must(uuid.NewV7()))
}

// FromReader returns a game ID whose random bits come from r. The timestamp
// bits still come from the wall clock.
func FromReader(r io.Reader) (string, error) {
	id, err := uuid.NewV7FromReader(r)
	if err != nil {
		return "", fmt.Errorf("generate game ID: %w", err)
	}
	return Encode(id), nil
}

// Encode renders a UUID in game ID form.
func Encode(id uuid.UUID) string {
	return encoding.EncodeToString(id[:])
}

// Decode parses a game ID back into its UUID.
func Decode(s string) (uuid.UUID, error) {
	if len(s) != encodedLen {
		return uuid.Nil, fmt.Errorf("game ID must be exactly %d characters, got %d", encodedLen, len(s))
	}
	raw, err := encoding.DecodeString(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("game ID %q: %w", s, err)
	}
	return uuid.FromBytes(raw)
}

// Validate checks that s decodes to a version 7 UUID.
func Validate(s string) error {
	id, err := Decode(s)
	if err != nil {
		return err
	}
	if v := id.Version(); v != 7 {
		return fmt.Errorf("game ID %q has UUID version %d, want 7", s, v)
	}
	return nil
}
