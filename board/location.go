package board

import "fmt"

// Location is a (row, file) coordinate. Row 0 is White's back rank.
type Location struct {
	Row  int
	File int
}

func Loc(row, file int) Location {
	return Location{Row: row, File: file}
}

func (l Location) add(n nav) Location {
	return Location{Row: l.Row + n.rank, File: l.File + n.file}
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.File)
}

// less orders locations row-major.
func (l Location) less(o Location) bool {
	if l.Row != o.Row {
		return l.Row < o.Row
	}
	return l.File < o.File
}
