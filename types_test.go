package frodomatrix

import (
	"bytes"
	"testing"
)

func TestNewMatrix(t *testing.T) {
	A := NewMatrix(4)
	if A.Dim() != 4 {
		t.Fatalf("Dim() = %d, want 4", A.Dim())
	}
	for i, row := range A {
		if len(row) != 4 || cap(row) != 4 {
			t.Errorf("row %d: len %d cap %d, want 4/4", i, len(row), cap(row))
		}
	}

	// Appending to a row must not clobber the next one
	A[1][0] = 7
	_ = append(A[0], 9)
	if A[1][0] != 7 {
		t.Error("append to row 0 overwrote row 1")
	}

	if NewMatrix(0).Dim() != 0 || NewMatrix(-3).Dim() != 0 {
		t.Error("non-positive dimension should give an empty matrix")
	}
}

func TestMatrixEqual(t *testing.T) {
	A := Matrix{{1, 2}, {3, 4}}
	B := Matrix{{1, 2}, {3, 4}}
	C := Matrix{{1, 2}, {3, 5}}
	D := Matrix{{1, 2}}
	E := Matrix{{1, 2}, {3}}

	if !A.Equal(B) {
		t.Error("equal matrices reported different")
	}
	if A.Equal(C) || A.Equal(D) || A.Equal(E) {
		t.Error("different matrices reported equal")
	}
}

func TestMatrixBytes(t *testing.T) {
	A := Matrix{{0x0102, 0x0304}, {0xa0b0, 0x00ff}}
	want := []byte{0x02, 0x01, 0x04, 0x03, 0xb0, 0xa0, 0xff, 0x00}
	if got := A.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes() = %x, want %x", got, want)
	}
	if len(Matrix{}.Bytes()) != 0 {
		t.Error("empty matrix should pack to no bytes")
	}
}
