package blockbuffer

import (
	"bufio"
	"io"
)

func IsCoin(cv byte) bool {
	return cv == 0xc2 || cv == 0xc3
}

func IsSolid(cv byte) bool {
	return (cv >= 0x10 && cv < 0x40) ||
		(cv >= 0x61 && cv < 0x80) ||
		(cv >= 0x88 && cv < 0xc0) ||
		cv >= 0xc4
}

func IsClimb(cv byte) bool {
	return (cv >= 0x24 && cv < 0x40) ||
		(cv >= 0x6d && cv < 0x80) ||
		(cv >= 0x8a && cv < 0xc0) ||
		cv >= 0xc6
}

func IsHiddenBlock(cv byte) bool {
	return cv == 0x5f || cv == 0x60
}

func IsQuestionBlock(cv byte) bool {
	return cv == 0xc0 || cv == 0xc1 || (cv >= 0x55 && cv <= 0x60)
}

// Glyph returns the character Render uses for a block.
func Glyph(cv byte) byte {
	switch {
	case cv == 0:
		return '.'
	case IsCoin(cv):
		return 'o'
	case IsQuestionBlock(cv):
		return '?'
	case IsClimb(cv):
		return 'H'
	case IsSolid(cv):
		return '#'
	default:
		return '+'
	}
}

// Render draws the map as ASCII art, one line per row.
func (m *Map) Render(w io.Writer) error {
	writer := bufio.NewWriter(w)

	for _, row := range m.rows {
		for _, cv := range row {
			writer.WriteByte(Glyph(cv))
		}
		writer.WriteByte('\n')
	}

	return writer.Flush()
}
