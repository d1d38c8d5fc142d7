/*
File    : golox/internal/scanner/scanner_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner_PeekIsIdempotent(t *testing.T) {
	s := New("ab")
	assert.Equal(t, 'a', s.Current())
	assert.Equal(t, 'a', s.Current(), "Peek(0) must not consume")
	assert.Equal(t, 'b', s.Peek(1))
}

func TestScanner_AdvanceSlidesRing(t *testing.T) {
	s := New("xyz")
	assert.Equal(t, 'x', s.Advance())
	assert.Equal(t, 'y', s.Current())
	assert.Equal(t, 'y', s.Advance())
	assert.Equal(t, 'z', s.Advance())
	assert.Equal(t, EOF, s.Current())
	assert.True(t, s.AtEnd())
}

func TestScanner_TracksLines(t *testing.T) {
	s := New("a\nb\nc")
	assert.Equal(t, 1, s.Line())
	s.Advance() // a
	s.Advance() // \n
	assert.Equal(t, 2, s.Line())
	s.Advance() // b
	s.Advance() // \n
	assert.Equal(t, 3, s.Line())
}

func TestScanner_EmptySourceIsImmediatelyAtEnd(t *testing.T) {
	s := New("")
	assert.True(t, s.AtEnd())
	assert.Equal(t, EOF, s.Peek(3))
}

func TestScanner_UnicodeScalars(t *testing.T) {
	s := New("héllo")
	var got []rune
	for !s.AtEnd() {
		got = append(got, s.Advance())
	}
	assert.Equal(t, []rune("héllo"), got)
}
