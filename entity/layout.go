package entity

import (
	"errors"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/AnkushinDaniil/piv/entity/parameters"
)

// WindowParams is the read-only view of the resolved parameters a layout needs.
type WindowParams interface {
	WinSize() parameters.Size
	OverlapHoriz() int
	OverlapVert() int
	MaxDispX() int
	MaxDispY() int
}

// Window is one interrogation window, positioned by its top-left pixel.
type Window struct {
	Row int
	Col int
	X   int
	Y   int
}

// Layout is the grid of interrogation windows swept over one image.
type Layout struct {
	image   parameters.Size
	window  parameters.Size
	maxDisp parameters.Displacement
	cols    int
	rows    int
	windows []Window
}

func NewLayout(image parameters.Size, params WindowParams) (*Layout, error) {
	win := params.WinSize()
	xs, err := origins(image.Width, win.Width, params.OverlapHoriz())
	if err != nil {
		return nil, fmt.Errorf("failed to place windows horizontally: %w", err)
	}
	ys, err := origins(image.Height, win.Height, params.OverlapVert())
	if err != nil {
		return nil, fmt.Errorf("failed to place windows vertically: %w", err)
	}

	l := &Layout{
		image:   image,
		window:  win,
		maxDisp: parameters.Displacement{X: params.MaxDispX(), Y: params.MaxDispY()},
		cols:    len(xs),
		rows:    len(ys),
		windows: make([]Window, 0, len(xs)*len(ys)),
	}
	for row, y := range ys {
		for col, x := range xs {
			l.windows = append(l.windows, Window{Row: row, Col: col, X: x, Y: y})
		}
	}
	return l, nil
}

// origins returns window start positions along one axis. Windows step by
// window-overlap and must fit entirely inside the extent.
func origins(extent, window, overlap int) ([]int, error) {
	if window <= 0 {
		return nil, fmt.Errorf("window size %d is not positive", window)
	}
	step := window - overlap
	if step <= 0 {
		return nil, fmt.Errorf("overlap %d leaves no step for window %d", overlap, window)
	}
	if extent < window {
		return nil, errors.New("image is smaller than one window")
	}
	n := (extent-window)/step + 1
	out := make([]int, n)
	for i := range out {
		out[i] = i * step
	}
	return out, nil
}

func (l *Layout) Image() parameters.Size  { return l.image }
func (l *Layout) Window() parameters.Size { return l.window }
func (l *Layout) Cols() int               { return l.cols }
func (l *Layout) Rows() int               { return l.rows }

func (l *Layout) Windows() []Window {
	return append([]Window(nil), l.windows...)
}

// Centre returns the centre pixel of w.
func (l *Layout) Centre(w Window) (x, y int) {
	return w.X + l.window.Width/2, w.Y + l.window.Height/2
}

// CentreData returns window centres as chart points.
func (l *Layout) CentreData() []opts.ScatterData {
	data := make([]opts.ScatterData, 0, len(l.windows))
	for _, w := range l.windows {
		x, y := l.Centre(w)
		data = append(data, opts.ScatterData{
			Name:  fmt.Sprintf("r%d c%d", w.Row, w.Col),
			Value: []int{x, y},
		})
	}
	return data
}

// SearchData returns, for every window, the corners of its correlation
// search region: the window grown by the max displacement on each side.
func (l *Layout) SearchData() []opts.ScatterData {
	data := make([]opts.ScatterData, 0, 2*len(l.windows))
	for _, w := range l.windows {
		data = append(data,
			opts.ScatterData{Value: []int{w.X - l.maxDisp.X, w.Y - l.maxDisp.Y}},
			opts.ScatterData{Value: []int{w.X + l.window.Width + l.maxDisp.X, w.Y + l.window.Height + l.maxDisp.Y}},
		)
	}
	return data
}
