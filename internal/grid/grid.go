// Package grid splits a bounding rectangle into equal cells using one of
// three layout strategies and centres the result inside the rectangle.
package grid

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/cardgames-backend/internal/apperror"
)

// insetDivisor shrinks every cell by 1/20 of its size on each side.
const insetDivisor = 20

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (that Size) Area() float64 {
	return that.Width * that.Height
}

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (that Rect) MaxX() float64 {
	return that.X + that.Width
}

func (that Rect) Size() Size {
	return Size{Width: that.Width, Height: that.Height}
}

// Inset moves every edge inwards by dx horizontally and dy vertically.
func (that Rect) Inset(dx, dy float64) Rect {
	return Rect{X: that.X + dx, Y: that.Y + dy, Width: that.Width - 2*dx, Height: that.Height - 2*dy}
}

// Layout is one of FixedCellSize, Dimensions or AspectRatio.
type Layout interface {
	isLayout()
}

// FixedCellSize fits as many cells of the given size as the frame holds.
type FixedCellSize struct {
	Size Size
}

// Dimensions divides the frame into exactly Rows x Columns cells.
type Dimensions struct {
	Rows    int
	Columns int
}

// AspectRatio fits CellCount cells of width/height Ratio, as large as possible.
type AspectRatio struct {
	Ratio     float64
	CellCount int
}

func (FixedCellSize) isLayout() {}
func (Dimensions) isLayout()    {}
func (AspectRatio) isLayout()   {}

// Grid is a resolved layout. Changing the frame or the layout recalculates it.
type Grid struct {
	layout Layout
	frame  Rect

	rows     int
	columns  int
	cellSize Size
	cells    []Rect
}

func New(layout Layout, frame Rect) (*Grid, error) {
	if err := validate(layout); err != nil {
		return nil, err
	}

	grid := &Grid{layout: layout, frame: frame}
	grid.recalculate()

	return grid, nil
}

func validate(layout Layout) error {
	switch layout := layout.(type) {
	case FixedCellSize:
		if layout.Size.Width <= 0 || layout.Size.Height <= 0 {
			return fmt.Errorf("%w: cell size %vx%v must be positive",
				apperror.ErrInvalidArgument, layout.Size.Width, layout.Size.Height)
		}
	case Dimensions:
		if layout.Rows <= 0 || layout.Columns <= 0 {
			return fmt.Errorf("%w: dimensions %dx%d must be positive",
				apperror.ErrInvalidArgument, layout.Rows, layout.Columns)
		}
	case AspectRatio:
		if layout.Ratio <= 0 || math.IsNaN(layout.Ratio) || math.IsInf(layout.Ratio, 0) {
			return fmt.Errorf("%w: aspect ratio %v must be positive", apperror.ErrInvalidArgument, layout.Ratio)
		}
		if layout.CellCount < 0 {
			return fmt.Errorf("%w: cell count %d is negative", apperror.ErrInvalidArgument, layout.CellCount)
		}
	default:
		return fmt.Errorf("%w: unknown layout %T", apperror.ErrInvalidArgument, layout)
	}

	return nil
}

func (that *Grid) SetFrame(frame Rect) {
	that.frame = frame
	that.recalculate()
}

// SetLayout switches strategy; the grid is left untouched on error.
func (that *Grid) SetLayout(layout Layout) error {
	if err := validate(layout); err != nil {
		return err
	}

	that.layout = layout
	that.recalculate()

	return nil
}

func (that *Grid) Frame() Rect {
	return that.frame
}

func (that *Grid) Layout() Layout {
	return that.layout
}

func (that *Grid) recalculate() {
	that.rows, that.columns = 0, 0
	that.cellSize = Size{}
	that.cells = nil

	switch layout := that.layout.(type) {
	case FixedCellSize:
		that.rows = int(that.frame.Height / layout.Size.Height)
		that.columns = int(that.frame.Width / layout.Size.Width)
		that.cellSize = layout.Size
	case Dimensions:
		that.rows, that.columns = layout.Rows, layout.Columns
		that.cellSize = Size{
			Width:  that.frame.Width / float64(layout.Columns),
			Height: that.frame.Height / float64(layout.Rows),
		}
	case AspectRatio:
		size := that.largestCellSize(layout)
		if size.Area() <= 0 {
			return
		}
		that.cellSize = size
		that.columns = int(that.frame.Width / size.Width)
		that.rows = (layout.CellCount + that.columns - 1) / that.columns
	}

	that.layoutCells()
}

// layoutCells centres the rows x columns block in the frame and fills it
// row by row. A row wraps once the next origin, rounded, passes the last
// position a whole cell still fits at.
func (that *Grid) layoutCells() {
	count := that.CellCount()
	if count <= 0 {
		return
	}

	size := that.cellSize
	dx := (that.frame.Width - float64(that.columns)*size.Width) / 2
	dy := (that.frame.Height - float64(that.rows)*size.Height) / 2

	x, y := that.frame.X+dx, that.frame.Y+dy

	that.cells = make([]Rect, 0, count)
	for range count {
		cell := Rect{X: x, Y: y, Width: size.Width, Height: size.Height}
		that.cells = append(that.cells, cell.Inset(size.Width/insetDivisor, size.Height/insetDivisor))

		x += size.Width
		if math.Round(x) > math.Round(that.frame.MaxX()-size.Width) {
			x = that.frame.X + dx
			y += size.Height
		}
	}
}

// largestCellSize tries every row count and then every column count in
// 1..CellCount and keeps the largest cell that still fits them all.
func (that *Grid) largestCellSize(layout AspectRatio) Size {
	var largest Size
	if layout.CellCount <= 0 {
		return largest
	}

	for rows := 1; rows <= layout.CellCount; rows++ {
		height := that.frame.Height / float64(rows)
		largest = that.largerIfFits(Size{Width: height * layout.Ratio, Height: height}, largest, layout.CellCount)
	}

	for columns := 1; columns <= layout.CellCount; columns++ {
		width := that.frame.Width / float64(columns)
		largest = that.largerIfFits(Size{Width: width, Height: width / layout.Ratio}, largest, layout.CellCount)
	}

	return largest
}

func (that *Grid) largerIfFits(candidate, current Size, count int) Size {
	if candidate.Area() <= current.Area() {
		return current
	}

	if that.capacity(candidate) >= count {
		return candidate
	}

	return current
}

func (that *Grid) capacity(size Size) int {
	return int(that.frame.Height/size.Height) * int(that.frame.Width/size.Width)
}

// Cell returns the inset cell at a row-major index.
func (that *Grid) Cell(index int) (Rect, bool) {
	if index < 0 || index >= len(that.cells) {
		return Rect{}, false
	}

	return that.cells[index], true
}

func (that *Grid) CellAt(row, column int) (Rect, bool) {
	if row < 0 || column < 0 || column >= that.columns {
		return Rect{}, false
	}

	return that.Cell(row*that.columns + column)
}

// Cells returns a copy of every produced cell.
func (that *Grid) Cells() []Rect {
	return append([]Rect(nil), that.cells...)
}

func (that *Grid) Dimensions() (rows, columns int) {
	return that.rows, that.columns
}

// CellCount is the requested count for AspectRatio and rows*columns otherwise.
func (that *Grid) CellCount() int {
	if layout, ok := that.layout.(AspectRatio); ok {
		return layout.CellCount
	}

	return that.rows * that.columns
}

// CellSize is the size of one cell before the inset.
func (that *Grid) CellSize() Size {
	return that.cellSize
}

// AspectRatio is width/height of a cell as the layout asks for it.
func (that *Grid) AspectRatio() float64 {
	switch layout := that.layout.(type) {
	case AspectRatio:
		return layout.Ratio
	case FixedCellSize:
		return layout.Size.Width / layout.Size.Height
	case Dimensions:
		if that.frame.Width <= 0 || that.frame.Height <= 0 {
			return 0
		}
		return (that.frame.Width / float64(layout.Columns)) / (that.frame.Height / float64(layout.Rows))
	}

	return 0
}
