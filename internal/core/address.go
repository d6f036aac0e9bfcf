package core

// addressesPerBlock is how many positions a single data-independent address
// block refill supplies pseudo-random values for.
const addressesPerBlock = QWordsInBlock

// TypeArgon2d, TypeArgon2i, and TypeArgon2id are the type values written into
// an independent generator's input block; newGenerator also uses them to pick
// which AddressGenerator a lane gets.
const (
	TypeArgon2d uint64 = iota
	TypeArgon2i
	TypeArgon2id
)

// AddressGenerator supplies the pseudo-random value J used to pick a
// reference block for each position processed by the segment processor.
//
// Reference: Argon2 specification section 3.3 (data-dependent vs.
// data-independent addressing).
type AddressGenerator interface {
	// InitSegment prepares the generator for a new (pass, lane, slice).
	InitSegment(pass, lane, slice uint32)
	// Next returns J for the position identified by prevBlock (the lane's
	// most recently written block) and the position's index within the
	// current segment.
	Next(prevBlock *Block, index uint32) uint64
}

// dependentGenerator implements Argon2d addressing: J is simply the first
// word of the previous block in the lane.
type dependentGenerator struct{}

func (dependentGenerator) InitSegment(pass, lane, slice uint32) {}

func (dependentGenerator) Next(prevBlock *Block, index uint32) uint64 {
	return prevBlock[0]
}

// independentGenerator implements Argon2i addressing: J is drawn from a
// 128-word address block that is recomputed every 128 positions by double-
// compressing a counter-carrying input block against the zero block.
type independentGenerator struct {
	totalBlocks uint64
	iterations  uint64
	typeValue   uint64

	input   Block
	address Block
}

func newIndependentGenerator(totalBlocks, iterations uint64, typeValue uint64) *independentGenerator {
	return &independentGenerator{
		totalBlocks: totalBlocks,
		iterations:  iterations,
		typeValue:   typeValue,
	}
}

func (g *independentGenerator) InitSegment(pass, lane, slice uint32) {
	g.input = Block{}
	g.input[0] = uint64(pass)
	g.input[1] = uint64(lane)
	g.input[2] = uint64(slice)
	g.input[3] = g.totalBlocks
	g.input[4] = g.iterations
	g.input[5] = g.typeValue
	g.input[6] = 0
	g.address = Block{}

	if pass == 0 && slice == 0 {
		g.refill()
	}
}

func (g *independentGenerator) refill() {
	var zero Block
	g.input[6]++
	tmp := compress(&zero, &g.input)
	g.address = compress(&zero, &tmp)
}

func (g *independentGenerator) Next(prevBlock *Block, index uint32) uint64 {
	// index == 0 also satisfies this and would refill again right after
	// InitSegment's own refill; that only happens for pass-0/slice-0,
	// where processing starts at index 2, never 0, so no double refill.
	if index%addressesPerBlock == 0 {
		g.refill()
	}
	return g.address[index%addressesPerBlock]
}

// hybridGenerator implements Argon2id addressing: data-independent for pass
// 0 slices 0 and 1, data-dependent from pass 0 slice 2 onward.
type hybridGenerator struct {
	independent *independentGenerator
	dependent   dependentGenerator

	useIndependent bool
}

func newHybridGenerator(totalBlocks, iterations uint64) *hybridGenerator {
	return &hybridGenerator{
		independent: newIndependentGenerator(totalBlocks, iterations, TypeArgon2id),
	}
}

func (g *hybridGenerator) InitSegment(pass, lane, slice uint32) {
	g.useIndependent = pass == 0 && slice < 2
	if g.useIndependent {
		g.independent.InitSegment(pass, lane, slice)
		return
	}
	g.dependent.InitSegment(pass, lane, slice)
}

func (g *hybridGenerator) Next(prevBlock *Block, index uint32) uint64 {
	if g.useIndependent {
		return g.independent.Next(prevBlock, index)
	}
	return g.dependent.Next(prevBlock, index)
}
