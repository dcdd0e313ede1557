package render

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
)

// ParseBorder parses a border style name: "rounded", "ascii", or "none".
func ParseBorder(s string) (BorderStyle, bool) {
	switch s {
	case "rounded":
		return BorderRounded, true
	case "ascii":
		return BorderASCII, true
	case "none":
		return BorderNone, true
	default:
		return 0, false
	}
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee                          string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+",
	},
}

func writeTable[R ~[]string](w io.Writer, rows []R, style BorderStyle) error {
	widths := columnWidths(rows)
	bc, ok := borderSets[style]
	if !ok {
		return writePlainTable(w, rows, widths)
	}
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawRow(w, row, widths, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func writePlainTable[R ~[]string](w io.Writer, rows []R, widths []int) error {
	for _, row := range rows {
		parts := make([]string, len(widths))
		for i, width := range widths {
			parts[i] = padCell(cell(row, i), width)
		}
		if _, err := io.WriteString(w, strings.TrimRight(strings.Join(parts, "  "), " ")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// columnWidths returns the display width of each column across all rows.
// Ragged rows count toward the widest row's column count.
func columnWidths[R ~[]string](rows []R) []int {
	var widths []int
	for _, row := range rows {
		for i, c := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}
	return widths
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		if i > 0 {
			sb.WriteString(mid)
		}
		sb.WriteString(strings.Repeat(fill, width+2))
	}
	sb.WriteString(right)
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func drawRow(w io.Writer, row []string, widths []int, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(padCell(cell(row, i), width))
		sb.WriteString(" ")
		sb.WriteString(vert)
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func padCell(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
