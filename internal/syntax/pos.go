package syntax

import "fmt"

// Pos locates a token or node in a GCSS source buffer. The byte offset is
// authoritative; line and column are derived from it by the scanner and
// only serve error messages and dumps. The zero Pos is not valid.
type Pos struct {
	filename string
	offset   int    // 0-based, in bytes
	line     uint32 // 1-based
	col      uint32 // 1-based, in bytes from the start of the line
}

// NewPos returns the position at byte offset in filename, with its
// precomputed line and column.
func NewPos(filename string, offset int, line, col uint32) Pos {
	return Pos{filename: filename, offset: offset, line: line, col: col}
}

// String formats p as file:line:col, or line:col for anonymous sources.
// Errors add the raw offset separately.
func (p Pos) String() string {
	if p.filename == "" {
		return fmt.Sprintf("%d:%d", p.line, p.col)
	}
	return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
}

// IsValid reports whether p was produced by the scanner.
func (p Pos) IsValid() bool { return p.line > 0 }

// Offset is the byte offset reported in every Error.
func (p Pos) Offset() int { return p.offset }

func (p Pos) Line() uint32 { return p.line }

func (p Pos) Col() uint32 { return p.col }

func (p Pos) Filename() string { return p.filename }
