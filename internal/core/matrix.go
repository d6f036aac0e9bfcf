package core

import "encoding/binary"

// Matrix is the Argon2 block matrix B[lane][column].
type Matrix struct {
	lanes       uint32
	columnCount uint32
	blocks      [][]Block
}

// NewMatrix allocates a zeroed lanes x columnCount block matrix.
func NewMatrix(lanes, columnCount uint32) *Matrix {
	blocks := make([][]Block, lanes)
	for l := range blocks {
		blocks[l] = make([]Block, columnCount)
	}
	return &Matrix{lanes: lanes, columnCount: columnCount, blocks: blocks}
}

// Lanes returns the matrix's lane count.
func (m *Matrix) Lanes() uint32 { return m.lanes }

// ColumnCount returns the number of columns per lane.
func (m *Matrix) ColumnCount() uint32 { return m.columnCount }

// At returns a pointer to B[lane][column].
func (m *Matrix) At(lane, column uint32) *Block {
	return &m.blocks[lane][column]
}

// Release zeroes every block in the matrix. Not algorithmically required —
// the hash is already finalized by the time a caller can reach this — but
// it clears the derived key material (block seeds, intermediate compression
// state) out of the backing arrays before the matrix is left for the
// garbage collector, per the memory section's SHOULD-zero-on-release note.
func (m *Matrix) Release() {
	for lane := range m.blocks {
		for col := range m.blocks[lane] {
			m.blocks[lane][col].Zero()
		}
	}
}

func le32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

// InitialHash computes H0, the 64-byte entropy seed derived from every
// parameter and input to a run: `LE32(parallelism) ∥ LE32(hashLength) ∥
// LE32(memoryKiB) ∥ LE32(iterations) ∥ LE32(19) ∥ LE32(typeValue) ∥
// LE32(|message|) ∥ message ∥ LE32(|salt|) ∥ salt ∥ LE32(|secret|) ∥ secret
// ∥ LE32(|associatedData|) ∥ associatedData`.
func InitialHash(parallelism, hashLength, memoryKiB, iterations, typeValue uint32, message, salt, secret, associatedData []byte) ([64]byte, error) {
	stream, err := NewBlake2bStream(64, nil)
	if err != nil {
		return [64]byte{}, err
	}

	stream.Write(le32(parallelism))
	stream.Write(le32(hashLength))
	stream.Write(le32(memoryKiB))
	stream.Write(le32(iterations))
	stream.Write(le32(19))
	stream.Write(le32(typeValue))

	stream.Write(le32(uint32(len(message))))
	stream.Write(message)

	stream.Write(le32(uint32(len(salt))))
	stream.Write(salt)

	stream.Write(le32(uint32(len(secret))))
	stream.Write(secret)

	stream.Write(le32(uint32(len(associatedData))))
	stream.Write(associatedData)

	var h0 [64]byte
	copy(h0[:], stream.Sum())
	return h0, nil
}

// InitializeMemory fills the first two columns of every lane from H0, per
// section 3.2: B[l][0] = H′(H0 ∥ LE32(0) ∥ LE32(l), 1024), B[l][1] the same
// with column index 1.
func InitializeMemory(m *Matrix, h0 [64]byte) error {
	for lane := uint32(0); lane < m.lanes; lane++ {
		for col := uint32(0); col < 2; col++ {
			seed := make([]byte, 0, 64+8)
			seed = append(seed, h0[:]...)
			seed = append(seed, le32(col)...)
			seed = append(seed, le32(lane)...)

			data, err := HPrime(seed, BlockSize)
			if err != nil {
				return err
			}
			if err := m.At(lane, col).FromBytes(data); err != nil {
				return err
			}
		}
	}
	return nil
}

// Finalize XOR-folds the last column of every lane into a single block and
// derives the output tag with H′.
func Finalize(m *Matrix, hashLength int) ([]byte, error) {
	var c Block
	last := m.columnCount - 1
	for lane := uint32(0); lane < m.lanes; lane++ {
		c.XOR(m.At(lane, last))
	}
	return HPrime(c.ToBytes(), hashLength)
}
