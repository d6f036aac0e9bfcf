package core

import (
	"sync/atomic"
	"testing"
)

func TestWaitGroupExecutor_RunsAllTasks(t *testing.T) {
	var count int64
	WaitGroupExecutor{}.Run(8, func(index uint32) {
		atomic.AddInt64(&count, 1)
	})
	if count != 8 {
		t.Errorf("count = %d, want 8", count)
	}
}

func TestWaitGroupExecutor_SequentialForSingleTask(t *testing.T) {
	var got uint32 = 99
	WaitGroupExecutor{}.Run(1, func(index uint32) {
		got = index
	})
	if got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestFillMemory_ProducesNonZeroBlocks(t *testing.T) {
	const lanes = 2
	const columnCount = 16 // 4 slices * 4 segment length, multiple of 4*lanes

	h0, err := InitialHash(lanes, 32, columnCount*lanes, 1, uint32(TypeArgon2id), []byte("msg"), []byte("saltsalt"), nil, nil)
	if err != nil {
		t.Fatalf("InitialHash: %v", err)
	}

	m := NewMatrix(lanes, columnCount)
	if err := InitializeMemory(m, h0); err != nil {
		t.Fatalf("InitializeMemory: %v", err)
	}

	FillMemory(m, TypeArgon2id, 1, WaitGroupExecutor{})

	var zero Block
	for lane := uint32(0); lane < lanes; lane++ {
		for col := uint32(0); col < columnCount; col++ {
			if *m.At(lane, col) == zero {
				t.Errorf("B[%d][%d] is still zero after FillMemory", lane, col)
			}
		}
	}
}

func TestFillMemory_DeterministicAcrossRuns(t *testing.T) {
	const lanes = 2
	const columnCount = 16

	build := func() *Matrix {
		h0, err := InitialHash(lanes, 32, columnCount*lanes, 2, uint32(TypeArgon2d), []byte("msg"), []byte("saltsalt"), nil, nil)
		if err != nil {
			t.Fatalf("InitialHash: %v", err)
		}
		m := NewMatrix(lanes, columnCount)
		if err := InitializeMemory(m, h0); err != nil {
			t.Fatalf("InitializeMemory: %v", err)
		}
		FillMemory(m, TypeArgon2d, 2, WaitGroupExecutor{})
		return m
	}

	a := build()
	b := build()

	for lane := uint32(0); lane < lanes; lane++ {
		for col := uint32(0); col < columnCount; col++ {
			if *a.At(lane, col) != *b.At(lane, col) {
				t.Fatalf("B[%d][%d] differs across identical runs", lane, col)
			}
		}
	}
}
