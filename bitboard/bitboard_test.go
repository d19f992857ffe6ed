package bitboard

import "testing"

func TestSetClearTest(t *testing.T) {
	var b Board
	b = Set(b, 5)
	if !Test(b, 5) {
		t.Fatalf("expected square 5 to be set")
	}
	b = Clear(b, 5)
	if Test(b, 5) {
		t.Fatalf("expected square 5 to be cleared")
	}
}

func TestFirstSet(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		b := Board(1) << uint(sq)
		if got := FirstSet(b); got != sq {
			t.Fatalf("FirstSet(1<<%d) = %d, want %d", sq, got, sq)
		}
	}
}

func TestPopLSBEmpty(t *testing.T) {
	var b Board
	if i := PopLSB(&b); i != -1 {
		t.Fatalf("PopLSB(empty) = %d, want -1", i)
	}
}

func TestPopCount(t *testing.T) {
	testcases := []struct {
		b    Board
		want int
	}{
		{0, 0},
		{1, 1},
		{0xFF, 8},
		{0xFFFFFFFFFFFFFFFF, 64},
	}
	for _, tc := range testcases {
		if got := PopCount(tc.b); got != tc.want {
			t.Fatalf("PopCount(%#x) = %d, want %d", uint64(tc.b), got, tc.want)
		}
	}
}

func TestIterateAscending(t *testing.T) {
	b := Board(0b1011)
	var got []int
	Iterate(b, func(square int) { got = append(got, square) })
	want := []int{0, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("Iterate produced %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Iterate produced %v, want %v", got, want)
		}
	}
}
