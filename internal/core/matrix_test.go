package core

import "testing"

func TestNewMatrix_Shape(t *testing.T) {
	m := NewMatrix(4, 16)
	if m.Lanes() != 4 {
		t.Errorf("Lanes() = %d, want 4", m.Lanes())
	}
	if m.ColumnCount() != 16 {
		t.Errorf("ColumnCount() = %d, want 16", m.ColumnCount())
	}
	// Every block should exist and be addressable without panicking.
	for lane := uint32(0); lane < 4; lane++ {
		for col := uint32(0); col < 16; col++ {
			_ = m.At(lane, col)
		}
	}
}

func TestMatrix_ReleaseZeroesEveryBlock(t *testing.T) {
	m := NewMatrix(2, 3)
	for lane := uint32(0); lane < 2; lane++ {
		for col := uint32(0); col < 3; col++ {
			m.At(lane, col)[0] = 0x1234
		}
	}

	m.Release()

	var zero Block
	for lane := uint32(0); lane < 2; lane++ {
		for col := uint32(0); col < 3; col++ {
			if *m.At(lane, col) != zero {
				t.Errorf("B[%d][%d] not zeroed after Release", lane, col)
			}
		}
	}
}

func TestInitialHash_DeterministicAndSensitive(t *testing.T) {
	h1, err := InitialHash(1, 32, 64, 2, 2, []byte("password"), []byte("somesalt"), nil, nil)
	if err != nil {
		t.Fatalf("InitialHash: %v", err)
	}
	h2, err := InitialHash(1, 32, 64, 2, 2, []byte("password"), []byte("somesalt"), nil, nil)
	if err != nil {
		t.Fatalf("InitialHash: %v", err)
	}
	if h1 != h2 {
		t.Fatal("InitialHash is not deterministic")
	}

	h3, err := InitialHash(1, 32, 64, 2, 2, []byte("password2"), []byte("somesalt"), nil, nil)
	if err != nil {
		t.Fatalf("InitialHash: %v", err)
	}
	if h1 == h3 {
		t.Fatal("changing the message did not change H0")
	}
}

func TestInitializeMemory_FirstTwoColumnsDiffer(t *testing.T) {
	h0, err := InitialHash(2, 32, 16, 1, 2, []byte("m"), []byte("salt1234"), nil, nil)
	if err != nil {
		t.Fatalf("InitialHash: %v", err)
	}

	m := NewMatrix(2, 4)
	if err := InitializeMemory(m, h0); err != nil {
		t.Fatalf("InitializeMemory: %v", err)
	}

	if *m.At(0, 0) == *m.At(0, 1) {
		t.Error("B[0][0] and B[0][1] should differ (distinct column index in the seed)")
	}
	if *m.At(0, 0) == *m.At(1, 0) {
		t.Error("B[0][0] and B[1][0] should differ (distinct lane index in the seed)")
	}
}

func TestFinalize_XORFoldsAllLanes(t *testing.T) {
	m := NewMatrix(2, 2)
	m.At(0, 1)[0] = 0xAAAA
	m.At(1, 1)[0] = 0x5555

	tag, err := Finalize(m, 32)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if len(tag) != 32 {
		t.Errorf("tag length = %d, want 32", len(tag))
	}

	var folded Block
	folded[0] = 0xAAAA ^ 0x5555
	want, err := HPrime(folded.ToBytes(), 32)
	if err != nil {
		t.Fatalf("HPrime: %v", err)
	}
	if string(tag) != string(want) {
		t.Error("Finalize did not hash the XOR of every lane's last block")
	}
}
