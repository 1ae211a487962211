// Package board describes the Buffon's Needle board: a rectangle crossed by
// evenly spaced vertical column lines that dropped needles are tested against.
package board

// Board holds the play area dimensions and the x values of the column lines.
// The column set is built once and shared by every needle for the life of a
// simulation run.
type Board struct {
	Width       float64   // board width in pixels (ColumnSpace * column count)
	Height      float64   // board height in pixels
	ColumnSpace float64   // distance between adjacent column lines
	Columns     []float64 // ordered column x values, first at x=0
}

// New creates a board with columnCount columns of columnSpace width each.
// A board with n columns has n+1 column lines, including both edges.
func New(columnSpace float64, columnCount int, height float64) *Board {
	columns := make([]float64, columnCount+1)
	for i := range columns {
		columns[i] = columnSpace * float64(i)
	}
	return &Board{
		Width:       columnSpace * float64(columnCount),
		Height:      height,
		ColumnSpace: columnSpace,
		Columns:     columns,
	}
}
