package charcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/mdflow/charcode"
)

func TestDecode_collapsesCRLF(t *testing.T) {
	codes := charcode.Decode([]byte("a\r\nb"))
	want := []charcode.Code{
		charcode.Of('a'),
		charcode.CRLF,
		charcode.Of('b'),
	}
	assert.Equal(t, want, codes)
}

func TestDecode_bareCRAndLFStayChar(t *testing.T) {
	codes := charcode.Decode([]byte("a\rb\nc"))
	want := []charcode.Code{
		charcode.Of('a'), charcode.Of('\r'), charcode.Of('b'), charcode.Of('\n'), charcode.Of('c'),
	}
	assert.Equal(t, want, codes)
}

func TestDecode_tabExpandsToColumnStop(t *testing.T) {
	// A tab at column 1 expands to fill columns 1-4: one literal '\t' Char
	// plus three VirtualSpace codes.
	codes := charcode.Decode([]byte("\ta"))
	want := []charcode.Code{
		charcode.Of('\t'), charcode.VSpace, charcode.VSpace, charcode.VSpace, charcode.Of('a'),
	}
	assert.Equal(t, want, codes)
}

func TestDecode_tabAfterOneCharExpandsToNextStop(t *testing.T) {
	// "a\t" starts the tab at column 2, so it only needs to fill columns
	// 2-4: two VirtualSpace codes after the literal tab.
	codes := charcode.Decode([]byte("a\t"))
	want := []charcode.Code{
		charcode.Of('a'), charcode.Of('\t'), charcode.VSpace, charcode.VSpace,
	}
	assert.Equal(t, want, codes)
}

func TestDecode_malformedUTF8BecomesReplacementChar(t *testing.T) {
	codes := charcode.Decode([]byte{0xff, 'a'})
	want := []charcode.Code{
		charcode.Of('�'), charcode.Of('a'),
	}
	assert.Equal(t, want, codes)
}

func TestText_roundTripsPlainAndCRLF(t *testing.T) {
	codes := charcode.Decode([]byte("ab\r\ncd"))
	assert.Equal(t, "ab\r\ncd", charcode.Text(codes))
}

func TestText_virtualSpaceRendersAsSpace(t *testing.T) {
	codes := []charcode.Code{charcode.VSpace, charcode.VSpace}
	assert.Equal(t, "  ", charcode.Text(codes))
}

func TestCode_IsLineEndingAndIsSpaceOrTab(t *testing.T) {
	assert.True(t, charcode.CRLF.IsLineEnding())
	assert.True(t, charcode.Of('\n').IsLineEnding())
	assert.True(t, charcode.Of('\r').IsLineEnding())
	assert.False(t, charcode.Of('a').IsLineEnding())

	assert.True(t, charcode.VSpace.IsSpaceOrTab())
	assert.True(t, charcode.Of(' ').IsSpaceOrTab())
	assert.True(t, charcode.Of('\t').IsSpaceOrTab())
	assert.False(t, charcode.Of('a').IsSpaceOrTab())
}

func TestCode_IsEOF(t *testing.T) {
	assert.True(t, charcode.EOF.IsEOF())
	assert.False(t, charcode.Of('a').IsEOF())
}
