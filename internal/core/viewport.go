package core

import "math"

// Viewport projects world units onto a block of screen cells. The world's
// y axis points up, the screen's rows count down from Top.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
	Top            int // first screen row of the playfield
}

// NewViewport maps a world of w x h units onto cols x rows cells starting
// at row top.
func NewViewport(w, h float64, cols, rows, top int) Viewport {
	return Viewport{WorldW: w, WorldH: h, Cols: max(cols, 1), Rows: max(rows, 1), Top: top}
}

// Project returns the cells covered by a world box. Every box covers at
// least one cell, so small entities stay visible.
func (v Viewport) Project(b Box) Rect {
	cols, rows := float64(v.Cols), float64(v.Rows)

	left := int(math.Floor(b.X * cols / v.WorldW))
	right := int(math.Ceil(b.Right()*cols/v.WorldW)) - 1
	top := int(math.Floor((v.WorldH - b.Top()) * rows / v.WorldH))
	bottom := int(math.Ceil((v.WorldH-b.Y)*rows/v.WorldH)) - 1

	right = max(right, left)
	bottom = max(bottom, top)
	return NewRect(left, v.Top+top, right-left+1, bottom-top+1)
}

// WorldX converts a screen column to the world x at the column's center.
func (v Viewport) WorldX(col int) float64 {
	return (float64(col) + 0.5) * v.WorldW / float64(v.Cols)
}
