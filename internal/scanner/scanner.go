/*
File    : golox/internal/scanner/scanner.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scanner turns UTF-8 source text into a lazily-consumed sequence
// of Unicode scalar values with bounded lookahead. It is the leaf of the
// pipeline: the lexer is the only consumer of a Scanner.
package scanner

// bufferSize is the capacity of the lookahead ring. Two lookahead slots
// are the minimum the lexer needs (e.g. distinguishing "1.2" from "1..2"
// requires peeking past the first '.'); four gives headroom without
// meaningfully growing the struct.
const bufferSize = 4

// EOF is the sentinel scalar returned once the source is exhausted. It is
// chosen outside the Unicode codepoint range so it can never collide with
// a real scanned character.
const EOF rune = -1

// Scanner decodes a UTF-8 string into runes and exposes them through a
// small circular buffer, so Peek(i) is idempotent until the next Advance.
type Scanner struct {
	runes   []rune
	buf     [bufferSize]rune
	head    int // buf[head] is the current scalar
	readPos int // index into runes of the next scalar to load into the ring
	line    int
}

// New decodes src and primes the lookahead ring with its first
// bufferSize scalars (or EOF, for inputs shorter than that).
func New(src string) *Scanner {
	s := &Scanner{runes: []rune(src), line: 1}
	for i := 0; i < bufferSize; i++ {
		s.buf[i] = s.runeAt(i)
	}
	s.readPos = bufferSize
	return s
}

func (s *Scanner) runeAt(i int) rune {
	if i < 0 || i >= len(s.runes) {
		return EOF
	}
	return s.runes[i]
}

// Peek returns the scalar i positions ahead of the current one without
// consuming anything; Peek(0) is the current scalar. i must be within
// [0, bufferSize).
func (s *Scanner) Peek(i int) rune {
	return s.buf[(s.head+i)%bufferSize]
}

// Current is shorthand for Peek(0).
func (s *Scanner) Current() rune {
	return s.Peek(0)
}

// Advance consumes and returns the current scalar, sliding the ring
// forward by one and counting lines as '\n' passes through.
func (s *Scanner) Advance() rune {
	cur := s.buf[s.head]
	if cur == '\n' {
		s.line++
	}
	s.buf[s.head] = s.runeAt(s.readPos)
	s.readPos++
	s.head = (s.head + 1) % bufferSize
	return cur
}

// AtEnd reports whether the current scalar is the EOF sentinel.
func (s *Scanner) AtEnd() bool {
	return s.Current() == EOF
}

// Line returns the 1-indexed line of the current scalar.
func (s *Scanner) Line() int {
	return s.line
}
