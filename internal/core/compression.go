package core

// columnGroups lists, for each i in 0..7, the 16 word indices gathered for
// the column pass of the compression function G. Indices run down each of
// the 8 "columns" of the 8x16 word layout: R[2i], R[2i+1], R[2i+16],
// R[2i+17], ... R[2i+112], R[2i+113].
var columnGroups = func() [8][16]int {
	var groups [8][16]int
	for i := 0; i < 8; i++ {
		for k := 0; k < 8; k++ {
			groups[i][2*k] = 2*i + 16*k
			groups[i][2*k+1] = 2*i + 16*k + 1
		}
	}
	return groups
}()

// compress implements the Argon2 compression function G(x, y): a 1024-byte
// by 1024-byte to 1024-byte permutation built from two applications of
// round P (row pass, then column pass) over the XOR of its two inputs.
//
// Reference: Argon2 specification section 3.4 (compression function G).
func compress(x, y *Block) Block {
	var r Block
	for i := range r {
		r[i] = x[i] ^ y[i]
	}

	// Row pass: treat each run of 16 words as a 4x4 matrix and apply P.
	for i := 0; i < QWordsInBlock; i += 16 {
		gRound(r[i : i+16])
	}

	// Column pass: gather the strided column words, apply P, scatter back.
	var tmp [16]uint64
	for _, group := range columnGroups {
		for k, idx := range group {
			tmp[k] = r[idx]
		}
		gRound(tmp[:])
		for k, idx := range group {
			r[idx] = tmp[k]
		}
	}

	var out Block
	for i := range out {
		out[i] = r[i] ^ x[i] ^ y[i]
	}
	return out
}

// fillBlock computes the next block in a lane from its predecessor and a
// reference block chosen by the address generator. On the first pass the
// result replaces the block outright; on later passes it is XORed into the
// block's existing contents, per spec section 3 ("Each column c of lane l
// is written in pass order...").
func fillBlock(prev, ref, next *Block, withXOR bool) {
	result := compress(prev, ref)
	if withXOR {
		result.XOR(next)
	}
	next.Copy(&result)
}
