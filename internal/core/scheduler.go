package core

import "sync"

// Executor runs a set of per-lane tasks concurrently and waits for all of
// them to finish before returning. It is the engine's only concurrency
// dependency, kept swappable so callers can supply their own worker pool or
// force sequential execution.
//
// Reference: spec section 4.7 (injectable scheduler substrate).
type Executor interface {
	// Run launches count independent invocations of task, one per index in
	// [0, count), and blocks until every invocation has returned.
	Run(count uint32, task func(index uint32))
}

// WaitGroupExecutor is the default Executor: one goroutine per task,
// synchronized with a sync.WaitGroup barrier (wg.Add/defer wg.Done/wg.Wait),
// one goroutine per lane rather than one per CPU. A single task runs
// directly on the calling goroutine.
type WaitGroupExecutor struct{}

// Run implements Executor.
func (WaitGroupExecutor) Run(count uint32, task func(index uint32)) {
	if count == 1 {
		task(0)
		return
	}

	var wg sync.WaitGroup
	wg.Add(int(count))
	for i := uint32(0); i < count; i++ {
		go func(index uint32) {
			defer wg.Done()
			task(index)
		}(i)
	}
	wg.Wait()
}

// newGenerator builds the address generator appropriate for typeValue.
func newGenerator(typeValue uint64, totalBlocks, iterations uint64) AddressGenerator {
	switch typeValue {
	case TypeArgon2i:
		return newIndependentGenerator(totalBlocks, iterations, TypeArgon2i)
	case TypeArgon2id:
		return newHybridGenerator(totalBlocks, iterations)
	default:
		return dependentGenerator{}
	}
}

// FillMemory runs all `iterations` passes over the block matrix, using
// executor to parallelize the lanes within each of the SyncPoints slices of
// a pass. Lanes within a slice make no ordering guarantees among
// themselves; the barrier at the end of each slice is mandatory so that
// cross-lane reference reads always target finalized blocks.
func FillMemory(m *Matrix, typeValue uint64, iterations uint32, executor Executor) {
	lanes := m.Lanes()
	columnCount := m.ColumnCount()
	segmentLength := columnCount / SyncPoints
	totalBlocks := uint64(lanes) * uint64(columnCount)

	generators := make([]AddressGenerator, lanes)
	for l := range generators {
		generators[l] = newGenerator(typeValue, totalBlocks, uint64(iterations))
	}

	for pass := uint32(0); pass < iterations; pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			executor.Run(lanes, func(lane uint32) {
				processSegment(m, generators[lane], pass, lane, slice, segmentLength, lanes)
			})
		}
	}
}

// processSegment fills every block in one (pass, lane, slice) segment.
//
// Reference: spec section 4.6 (segment processor).
func processSegment(m *Matrix, gen AddressGenerator, pass, lane, slice, segmentLength, lanes uint32) {
	columnCount := m.ColumnCount()

	startIndex := uint32(0)
	if pass == 0 && slice == 0 {
		startIndex = 2
	}

	gen.InitSegment(pass, lane, slice)

	for index := startIndex; index < segmentLength; index++ {
		currentColumn := slice*segmentLength + index

		var prevColumn uint32
		if currentColumn == 0 {
			prevColumn = columnCount - 1
		} else {
			prevColumn = currentColumn - 1
		}

		prevBlock := m.At(lane, prevColumn)
		pos := &Position{Pass: pass, Lane: lane, Slice: slice, Index: index}

		j := gen.Next(prevBlock, index)

		rLane := refLane(pos, j, lanes)
		rColumn := refColumn(pos, j, rLane, segmentLength, columnCount)

		refBlock := m.At(rLane, rColumn)
		withXOR := pass > 0
		fillBlock(prevBlock, refBlock, m.At(lane, currentColumn), withXOR)
	}
}
