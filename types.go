package argon2

import (
	"fmt"

	"github.com/opd-ai/go-argon2/internal/core"
)

// Type selects which Argon2 addressing variant an Engine runs.
type Type int

const (
	// TypeD selects Argon2d: data-dependent addressing, maximizing
	// resistance to time-memory tradeoff attacks at the cost of exposing
	// a side channel through memory access patterns.
	TypeD Type = iota

	// TypeI selects Argon2i: data-independent addressing, immune to the
	// memory-access side channel, recommended for password hashing.
	TypeI

	// TypeID selects Argon2id: hybrid addressing, data-independent for the
	// first half of the first pass and data-dependent afterward. The
	// recommended default for most applications.
	TypeID
)

// String returns the canonical lowercase name used in the encoded hash
// string (e.g. "argon2id").
func (t Type) String() string {
	switch t {
	case TypeD:
		return "argon2d"
	case TypeI:
		return "argon2i"
	case TypeID:
		return "argon2id"
	default:
		return fmt.Sprintf("Type(%d)", t)
	}
}

// coreTypeValue maps a Type to the typeValue word used in the entropy
// buffer and the independent generator's input block. The encoded string
// uses String() instead.
func (t Type) coreTypeValue() (uint64, error) {
	switch t {
	case TypeD:
		return core.TypeArgon2d, nil
	case TypeI:
		return core.TypeArgon2i, nil
	case TypeID:
		return core.TypeArgon2id, nil
	default:
		return 0, &UnsupportedTypeError{Name: t.String()}
	}
}

func parseType(name string) (Type, bool) {
	switch name {
	case "argon2d":
		return TypeD, true
	case "argon2i":
		return TypeI, true
	case "argon2id":
		return TypeID, true
	default:
		return 0, false
	}
}
