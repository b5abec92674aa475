package blockbuffer

import (
	"fmt"
	"strings"
)

type Style int

const (
	StyleRust = Style(iota)
	StyleGo
)

func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "", "rust":
		return StyleRust, nil
	case "go":
		return StyleGo, nil
	default:
		return StyleRust, fmt.Errorf("blockbuffer: unknown style: %s", s)
	}
}

func (s Style) String() string {
	switch s {
	case StyleRust:
		return "rust"
	case StyleGo:
		return "go"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// GoLiteral renders m as a Go variable declaration named name.
func GoLiteral(name string, m *Map) string {
	builder := strings.Builder{}
	fmt.Fprintf(&builder, "var %s = [%d][%d]byte{\n", name, Rows, m.width)

	for _, row := range m.rows {
		builder.WriteString("\t{")
		for i, cv := range row {
			if i > 0 {
				builder.WriteString(", ")
			}
			fmt.Fprintf(&builder, "0x%02x", cv)
		}
		builder.WriteString("},\n")
	}

	builder.WriteString("}\n")
	return builder.String()
}
