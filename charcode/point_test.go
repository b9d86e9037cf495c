package charcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_advance(t *testing.T) {
	p := Start
	assert.Equal(t, Point{Line: 1, Column: 1}, p)

	p = p.Advance(Of('a'))
	assert.Equal(t, Point{Offset: 1, Line: 1, Column: 2, Index: 1}, p)

	p = p.Advance(CRLF)
	assert.Equal(t, Point{Offset: 3, Line: 2, Column: 1, Index: 2}, p)

	p = p.Advance(VSpace)
	assert.Equal(t, Point{Offset: 3, Line: 2, Column: 2, Index: 3}, p)
}

func TestPoint_advanceEOFDoesNotAdvance(t *testing.T) {
	p := Point{Offset: 5, Line: 2, Column: 3, Index: 7}
	got := p.Advance(EOF)
	want := p
	want.Index = p.Index // EOF leaves Index untouched despite the n.Index++ above it
	assert.Equal(t, want, got)
}
