// Package argon2 implements the Argon2 password-hashing key derivation
// function (RFC 9106), all three addressing variants, version 0x13 (19).
//
// Example usage:
//
//	engine, err := argon2.New(argon2.DefaultParams(argon2.TypeID))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	encoded, err := engine.HashEncoded([]byte("correct horse battery staple"), salt)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, err := argon2.VerifyEncoded([]byte("correct horse battery staple"), encoded)
package argon2

import (
	"crypto/subtle"

	"github.com/opd-ai/go-argon2/internal/core"
)

// Engine derives and verifies Argon2 tags for a fixed set of Params. It is
// safe for concurrent use: every Hash/Verify call builds its own block
// matrix and touches no shared mutable state.
type Engine struct {
	params         Params
	secret         []byte
	associatedData []byte
	executor       Executor
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithSecret sets a default secret (pepper) mixed into every hash produced
// by this Engine.
func WithSecret(secret []byte) Option {
	return func(e *Engine) { e.secret = append([]byte(nil), secret...) }
}

// WithAssociatedData sets default associated data mixed into every hash.
func WithAssociatedData(associatedData []byte) Option {
	return func(e *Engine) { e.associatedData = append([]byte(nil), associatedData...) }
}

// WithExecutor overrides the concurrency substrate used to run lane tasks.
// The default is WaitGroupExecutor.
func WithExecutor(executor Executor) Option {
	return func(e *Engine) { e.executor = executor }
}

// callParams holds the per-call secret/associatedData overrides collected
// from a Hash/HashEncoded/Verify/VerifyEncoded call. The *Set fields
// distinguish "not overridden" from "overridden with nil/empty", so an
// explicit override always wins over the Engine's construction-time default.
type callParams struct {
	secret            []byte
	secretSet         bool
	associatedData    []byte
	associatedDataSet bool
}

// CallOption overrides a single Hash/HashEncoded/Verify/VerifyEncoded call's
// secret or associated data, falling back to the Engine's default (set via
// WithSecret/WithAssociatedData, or nil for VerifyEncoded's throwaway
// Engine) when omitted.
type CallOption func(*callParams)

// WithCallSecret overrides the secret (pepper) mixed into a single call.
func WithCallSecret(secret []byte) CallOption {
	return func(c *callParams) { c.secret = secret; c.secretSet = true }
}

// WithCallAssociatedData overrides the associated data mixed into a single
// call.
func WithCallAssociatedData(associatedData []byte) CallOption {
	return func(c *callParams) { c.associatedData = associatedData; c.associatedDataSet = true }
}

func resolveCallParams(defaultSecret, defaultAssociatedData []byte, opts []CallOption) ([]byte, []byte) {
	cp := callParams{}
	for _, opt := range opts {
		opt(&cp)
	}
	secret := defaultSecret
	if cp.secretSet {
		secret = cp.secret
	}
	associatedData := defaultAssociatedData
	if cp.associatedDataSet {
		associatedData = cp.associatedData
	}
	return secret, associatedData
}

// New validates params and builds an Engine. Params are immutable for the
// lifetime of the returned Engine.
func New(params Params, opts ...Option) (*Engine, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		params:   params,
		executor: WaitGroupExecutor{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Hash derives a hashLength-byte tag for message under salt. The Engine's
// configured secret and associated data apply unless overridden for this
// call via WithCallSecret/WithCallAssociatedData.
func (e *Engine) Hash(message, salt []byte, opts ...CallOption) ([]byte, error) {
	if err := validateSalt(len(salt)); err != nil {
		return nil, err
	}

	secret, associatedData := resolveCallParams(e.secret, e.associatedData, opts)

	typeValue, err := e.params.Type.coreTypeValue()
	if err != nil {
		return nil, err
	}

	columnCount := e.params.columnCount()

	// H0 encodes the truncated memory size, so MemoryKiB values that
	// truncate to the same blockCount produce the same tag.
	h0, err := core.InitialHash(
		e.params.Parallelism,
		e.params.HashLength,
		e.params.blockCount(),
		e.params.Iterations,
		uint32(typeValue),
		message, salt, secret, associatedData,
	)
	if err != nil {
		return nil, err
	}

	matrix := core.NewMatrix(e.params.Parallelism, columnCount)
	defer matrix.Release()
	if err := core.InitializeMemory(matrix, h0); err != nil {
		return nil, err
	}

	core.FillMemory(matrix, typeValue, e.params.Iterations, e.executor)

	return core.Finalize(matrix, int(e.params.HashLength))
}

// HashEncoded derives a tag and returns it as the canonical
// `$argon2X$v=19$m=...,t=...,p=...$<salt>$<hash>` string.
func (e *Engine) HashEncoded(message, salt []byte, opts ...CallOption) (string, error) {
	tag, err := e.Hash(message, salt, opts...)
	if err != nil {
		return "", err
	}
	return encode(e.params, salt, tag), nil
}

// Verify recomputes message's tag under salt and compares it to expected
// in constant time. The boolean result reflects a cryptographic mismatch;
// any error indicates a failure to even attempt the comparison (invalid
// parameters), distinct from a clean non-match.
func (e *Engine) Verify(message, salt, expected []byte, opts ...CallOption) (bool, error) {
	tag, err := e.Hash(message, salt, opts...)
	if err != nil {
		return false, err
	}
	if len(tag) != len(expected) {
		return false, nil
	}
	return subtle.ConstantTimeCompare(tag, expected) == 1, nil
}

// VerifyEncoded parses an encoded hash string and verifies message against
// it, using the parameters and salt embedded in the string rather than any
// Engine's own Params. A malformed string is an error; a well-formed string
// whose tag does not match message returns (false, nil). A hash produced
// with a secret or associated data must pass the same values here via
// WithCallSecret/WithCallAssociatedData, since the encoded string carries
// neither.
func VerifyEncoded(message []byte, encoded string, opts ...CallOption) (bool, error) {
	params, salt, expected, err := decode(encoded)
	if err != nil {
		return false, err
	}

	engine, err := New(params)
	if err != nil {
		return false, err
	}

	return engine.Verify(message, salt, expected, opts...)
}
