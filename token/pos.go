package token

import "fmt"

// Pos locates a byte in an input document.
type Pos struct {
	Offset int
	Line   int // 1-based
	Col    int // 1-based, in bytes
}

// PosAt resolves the line and column of the byte at off in d.
func PosAt(d []byte, off int) Pos {
	if off > len(d) {
		off = len(d)
	}
	line, col := 1, 1
	for i := 0; i < off; i++ {
		if d[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return Pos{Offset: off, Line: line, Col: col}
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
