package token

import "fmt"

// Location is a 1-based line/column pair. Columns count runes, so a tab
// occupies a single column.
type Location struct {
	Line, Column int
}

func NewLocation(line, column int) Location {
	return Location{Line: line, Column: column}
}

func (loc *Location) Move(character rune) {
	if character == '\n' {
		loc.Column = 1
		loc.Line++
	} else {
		loc.Column++
	}
}

func (loc Location) String() string {
	return fmt.Sprintf("%d:%d", loc.Line, loc.Column)
}
