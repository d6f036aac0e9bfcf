package argon2

// Params holds the immutable configuration of a hashing run: hashLength,
// parallelism, memoryKiB, iterations, and the variant (Type).
//
// Reference: spec section 3 ("Parameters (immutable per engine instance)").
type Params struct {
	// Type selects Argon2d, Argon2i, or Argon2id addressing.
	Type Type

	// Iterations is the number of passes made over the memory matrix.
	// Must be at least 1.
	Iterations uint32

	// MemoryKiB is the requested memory size in kibibytes. It is rounded
	// down to the nearest multiple of 4*Parallelism before use. Must be
	// at least 8*Parallelism.
	MemoryKiB uint32

	// Parallelism is the number of lanes. Must be at least 1.
	Parallelism uint32

	// HashLength is the length in bytes of the derived tag. Must be at
	// least 4.
	HashLength uint32
}

// DefaultParams returns RFC 9106-style starting parameters for t, a
// starting point for callers who do not want to pick their own memory and
// iteration counts from scratch. Mirrors the defaultMemory/defaultTime/
// defaultThreadCount constants common to Argon2 reference bindings.
func DefaultParams(t Type) Params {
	return Params{
		Type:        t,
		Iterations:  3,
		MemoryKiB:   64 * 1024,
		Parallelism: 4,
		HashLength:  32,
	}
}

// blockCount returns the number of 1024-byte blocks the matrix will hold
// once MemoryKiB is truncated to a multiple of 4*Parallelism.
func (p Params) blockCount() uint32 {
	step := 4 * p.Parallelism
	return p.MemoryKiB - (p.MemoryKiB % step)
}

// columnCount returns blocks-per-lane: blockCount / Parallelism.
func (p Params) columnCount() uint32 {
	return p.blockCount() / p.Parallelism
}

// validate checks Params against spec section 7's pre-init rules.
func (p Params) validate() error {
	if p.HashLength < 4 {
		return &InvalidParameterError{Field: "hashLength", Value: p.HashLength, Reason: "must be >= 4"}
	}
	if p.Parallelism < 1 {
		return &InvalidParameterError{Field: "parallelism", Value: p.Parallelism, Reason: "must be >= 1"}
	}
	if p.MemoryKiB < 8*p.Parallelism {
		return &InvalidParameterError{Field: "memoryKiB", Value: p.MemoryKiB, Reason: "must be >= 8*parallelism"}
	}
	if p.Iterations < 1 {
		return &InvalidParameterError{Field: "iterations", Value: p.Iterations, Reason: "must be >= 1"}
	}
	if _, err := p.Type.coreTypeValue(); err != nil {
		return err
	}
	return nil
}

// validateSalt checks the salt length rule, which depends on the
// caller-supplied salt rather than Params alone.
func validateSalt(saltLen int) error {
	if saltLen < 8 {
		return &InvalidParameterError{Field: "saltLength", Value: uint32(saltLen), Reason: "must be >= 8 bytes"}
	}
	return nil
}
