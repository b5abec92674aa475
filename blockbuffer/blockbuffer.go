// Package blockbuffer converts dumps of the NES block buffer (blocks of 13*16 bytes
// at 0x500-0x5cf and 0x5d0-0x69f) into 2-D maps.
package blockbuffer

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	Rows       = 13
	BlockWidth = 16

	RowChars   = BlockWidth * 2
	BlockChars = RowChars * Rows
)

const ZeroToken = "  0"

// ReadDump reads r until EOF and returns every line with its surrounding
// whitespace removed, concatenated in order. Lines end at "\n", "\r" or
// "\r\n".
func ReadDump(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, math.MaxInt)
	scanner.Split(scanLines)

	builder := strings.Builder{}
	for scanner.Scan() {
		builder.WriteString(strings.TrimSpace(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return builder.String(), nil
}

func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}

// chars splits s into characters. Invalid UTF-8 is split by byte so that
// no input is replaced.
func chars(s string) []string {
	if !utf8.ValidString(s) {
		out := make([]string, len(s))
		for i := range out {
			out[i] = s[i : i+1]
		}
		return out
	}

	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// SplitRows splits buf into the 13 rows of the block buffer. Slices that
// run past the end of buf are truncated, so short dumps produce short or
// empty rows.
func SplitRows(buf string) []string {
	cs := chars(buf)

	rows := make([]string, Rows)
	for y := range rows {
		builder := strings.Builder{}
		for i := y * RowChars; i < len(cs); i += BlockChars {
			builder.WriteString(strings.Join(cs[i:min(i+RowChars, len(cs))], ""))
		}
		rows[y] = builder.String()
	}

	return rows
}

func Token(b string) string {
	if b == "00" {
		return ZeroToken
	}
	return "0x" + b
}

func Tokens(row string) []string {
	cs := chars(row)

	tokens := make([]string, 0, (len(cs)+1)/2)
	for i := 0; i < len(cs); i += 2 {
		tokens = append(tokens, Token(strings.Join(cs[i:min(i+2, len(cs))], "")))
	}

	return tokens
}

// Literal renders buf as a bracketed 2-D array literal usable by the
// blockbuf! macro. No validation is done on buf.
func Literal(buf string) string {
	rows := SplitRows(buf)

	hexRows := make([]string, len(rows))
	for i, row := range rows {
		hexRows[i] = "[" + strings.Join(Tokens(row), ",") + "]"
	}

	return "[" + strings.Join(hexRows, ",\n ") + "]"
}

func WriteLiteral(w io.Writer, buf string) error {
	_, err := io.WriteString(w, Literal(buf)+"\n")
	return err
}
