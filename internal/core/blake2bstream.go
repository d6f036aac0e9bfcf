// Package core implements the Argon2 block matrix, compression function,
// address generators, and scheduler. It wraps golang.org/x/crypto/blake2b
// for every BLAKE2b primitive the algorithm needs.
package core

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Blake2bConfig specifies Blake2b hashing configuration.
type Blake2bConfig struct {
	OutputSize int    // Hash output size in bytes
	Key        []byte // Optional key for keyed hashing
}

// Blake2bHash computes a Blake2b hash with the specified configuration.
func Blake2bHash(data []byte, config Blake2bConfig) ([]byte, error) {
	var hasher hash.Hash
	var err error

	if len(config.Key) > 0 {
		hasher, err = blake2b.New(config.OutputSize, config.Key)
	} else {
		hasher, err = blake2b.New(config.OutputSize, nil)
	}

	if err != nil {
		return nil, err
	}

	hasher.Write(data)
	return hasher.Sum(nil), nil
}

// Blake2bStream provides streaming Blake2b hashing.
type Blake2bStream struct {
	hasher hash.Hash
}

// NewBlake2bStream creates a new streaming Blake2b hasher.
func NewBlake2bStream(size int, key []byte) (*Blake2bStream, error) {
	hasher, err := blake2b.New(size, key)
	if err != nil {
		return nil, err
	}
	return &Blake2bStream{hasher: hasher}, nil
}

// Write adds data to the hash.
func (b *Blake2bStream) Write(data []byte) (int, error) {
	return b.hasher.Write(data)
}

// Sum returns the current hash value.
func (b *Blake2bStream) Sum() []byte {
	return b.hasher.Sum(nil)
}
