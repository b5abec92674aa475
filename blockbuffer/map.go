package blockbuffer

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// A Map is a decoded block buffer, indexed by block column and row.
type Map struct {
	width int
	rows  [Rows][]byte
}

// Decode strictly parses buf, which must be a non-empty run of hex digits
// made of whole 13*16 byte blocks.
func Decode(buf string) (*Map, error) {
	if len(buf) == 0 {
		return nil, &DumpError{ErrShortDump, 0}
	}

	for i := 0; i < len(buf); i++ {
		if !isHexDigit(buf[i]) {
			return nil, &DumpError{fmt.Errorf("%w: %q", ErrInvalidHex, buf[i]), i}
		}
	}

	if rem := len(buf) % BlockChars; rem != 0 {
		return nil, &DumpError{ErrShortDump, len(buf) - rem}
	}

	m := &Map{
		width: len(buf) / BlockChars * BlockWidth,
	}
	for y, row := range SplitRows(buf) {
		data, err := hex.DecodeString(row)
		if err != nil {
			return nil, &DumpError{err, y * RowChars}
		}
		m.rows[y] = data
	}

	return m, nil
}

// NewMap builds a map from row-major block data, as returned by Bytes.
func NewMap(width int, data []byte) (*Map, error) {
	if width <= 0 || width%BlockWidth != 0 {
		return nil, fmt.Errorf("blockbuffer: invalid width: %d", width)
	}

	if len(data) != width*Rows {
		return nil, fmt.Errorf("blockbuffer: expected %d bytes but got %d", width*Rows, len(data))
	}

	m := &Map{width: width}
	for y := range m.rows {
		m.rows[y] = append([]byte(nil), data[y*width:(y+1)*width]...)
	}

	return m, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func (m *Map) Width() int {
	return m.width
}

func (m *Map) Row(y int) []byte {
	return m.rows[y]
}

// BlockAt returns the block at column x and row y, or 0 if the position
// lies outside the map.
func (m *Map) BlockAt(x, y int) byte {
	if x < 0 || y < 0 || x >= m.width || y >= Rows {
		return 0
	}
	return m.rows[y][x]
}

func (m *Map) Bytes() []byte {
	data := make([]byte, 0, m.width*Rows)
	for _, row := range m.rows {
		data = append(data, row...)
	}
	return data
}

// Dump returns the map in its in-memory layout, one block of 13 rows after
// another, as lowercase hex.
func (m *Map) Dump() string {
	builder := strings.Builder{}
	builder.Grow(m.width * Rows * 2)

	for x := 0; x < m.width; x += BlockWidth {
		for _, row := range m.rows {
			builder.WriteString(hex.EncodeToString(row[x : x+BlockWidth]))
		}
	}

	return builder.String()
}

func (m *Map) Checksum() uint32 {
	return Checksum(m.Bytes())
}
