package core

import (
	"encoding/binary"
)

// HPrime is Argon2's variable-length hash function H′: it extends BLAKE2b
// to arbitrary output lengths by chaining BLAKE2b-512 digests, each
// contributing 32 bytes of output, until the final chunk is sized to fit
// exactly. For output lengths at or below 64 bytes it is simply a single
// BLAKE2b call with that digest size.
//
// No library exposes H′ directly — BLAKE2b implementations only produce
// fixed-size digests — so this builds it out of blake2b.New calls (through
// NewBlake2bStream and Blake2bHash) on top of golang.org/x/crypto/blake2b.
func HPrime(input []byte, outputLen int) ([]byte, error) {
	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(outputLen))

	if outputLen <= 64 {
		stream, err := NewBlake2bStream(outputLen, nil)
		if err != nil {
			return nil, err
		}
		stream.Write(lenPrefix[:])
		stream.Write(input)
		return stream.Sum(), nil
	}

	out := make([]byte, outputLen)

	full, err := NewBlake2bStream(64, nil)
	if err != nil {
		return nil, err
	}
	full.Write(lenPrefix[:])
	full.Write(input)
	v := full.Sum()

	copy(out, v[:32])
	remaining := out[32:]

	for len(remaining) > 64 {
		next, err := Blake2bHash(v, Blake2bConfig{OutputSize: 64})
		if err != nil {
			return nil, err
		}
		v = next
		copy(remaining, v[:32])
		remaining = remaining[32:]
	}

	if len(remaining) > 0 {
		last, err := Blake2bHash(v, Blake2bConfig{OutputSize: len(remaining)})
		if err != nil {
			return nil, err
		}
		copy(remaining, last)
	}

	return out, nil
}
