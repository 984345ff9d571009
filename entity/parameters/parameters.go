package parameters

import "fmt"

// Option keys recognised by Resolve. Other keys are carried in the option
// map but ignored.
const (
	KeyWindowX  = "interrogation_window_x"
	KeyWindowY  = "interrogation_window_y"
	KeyOverlapX = "window_overlap_x"
	KeyOverlapY = "window_overlap_y"
	KeyNumPeaks = "num_ccf_peaks"
	KeyMaxDispX = "max_displacement_x"
	KeyMaxDispY = "max_displacement_y"
)

const (
	DefaultWin   = 16
	DefaultOvlp  = 0
	DefaultPeaks = 3
)

// Size is an interrogation window extent in pixels.
type Size struct {
	Width  int
	Height int
}

// Overlap is the pixel overlap between neighbouring windows.
type Overlap struct {
	Horizontal int
	Vertical   int
}

// Displacement bounds the correlation search radius in pixels.
type Displacement struct {
	X int
	Y int
}

// Parameters is the resolved configuration of one PIV analysis run.
//
// Max displacement is derived from the window size when Resolve runs and has
// no setter. Changing the window size afterwards does not re-derive it;
// resolve a new option map instead when both must stay in step.
type Parameters struct {
	winSize Size
	overlap Overlap
	peaks   int
	maxDisp Displacement
}

// Default returns the parameters an empty option map resolves to.
func Default() *Parameters {
	return &Parameters{
		winSize: Size{Width: DefaultWin, Height: DefaultWin},
		overlap: Overlap{Horizontal: DefaultOvlp, Vertical: DefaultOvlp},
		peaks:   DefaultPeaks,
		maxDisp: Displacement{X: derivedMaxDisp(DefaultWin), Y: derivedMaxDisp(DefaultWin)},
	}
}

func (p *Parameters) WinWidth() int     { return p.winSize.Width }
func (p *Parameters) WinHeight() int    { return p.winSize.Height }
func (p *Parameters) OverlapHoriz() int { return p.overlap.Horizontal }
func (p *Parameters) OverlapVert() int  { return p.overlap.Vertical }
func (p *Parameters) NumPeaks() int     { return p.peaks }
func (p *Parameters) MaxDispX() int     { return p.maxDisp.X }
func (p *Parameters) MaxDispY() int     { return p.maxDisp.Y }

// WinSize returns a copy of the window size.
func (p *Parameters) WinSize() Size { return p.winSize }

func (p *Parameters) SetWinWidth(w int)     { p.winSize.Width = w }
func (p *Parameters) SetWinHeight(h int)    { p.winSize.Height = h }
func (p *Parameters) SetOverlapHoriz(o int) { p.overlap.Horizontal = o }
func (p *Parameters) SetOverlapVert(o int)  { p.overlap.Vertical = o }
func (p *Parameters) SetNumPeaks(n int)     { p.peaks = n }

// Summary lists every value for operator inspection.
func (p *Parameters) Summary() string {
	return fmt.Sprintf("Ix: %d\tIy: %d\nOx: %d\tOy: %d\nxMax: %d\tyMax: %d\nNo peaks: %d\n",
		p.winSize.Width, p.winSize.Height,
		p.overlap.Horizontal, p.overlap.Vertical,
		p.maxDisp.X, p.maxDisp.Y,
		p.peaks,
	)
}

func (p *Parameters) String() string {
	return p.Summary()
}

// Fields returns the values keyed by option name, for structured logging.
func (p *Parameters) Fields() map[string]any {
	return map[string]any{
		KeyWindowX:  p.winSize.Width,
		KeyWindowY:  p.winSize.Height,
		KeyOverlapX: p.overlap.Horizontal,
		KeyOverlapY: p.overlap.Vertical,
		KeyNumPeaks: p.peaks,
		KeyMaxDispX: p.maxDisp.X,
		KeyMaxDispY: p.maxDisp.Y,
	}
}

// document is the YAML form of Parameters. Its keys are the option keys, so
// a written document can be read back as an option source.
type document struct {
	WindowX  int `yaml:"interrogation_window_x"`
	WindowY  int `yaml:"interrogation_window_y"`
	OverlapX int `yaml:"window_overlap_x"`
	OverlapY int `yaml:"window_overlap_y"`
	NumPeaks int `yaml:"num_ccf_peaks"`
	MaxDispX int `yaml:"max_displacement_x"`
	MaxDispY int `yaml:"max_displacement_y"`
}

func (p *Parameters) MarshalYAML() (any, error) {
	return document{
		WindowX:  p.winSize.Width,
		WindowY:  p.winSize.Height,
		OverlapX: p.overlap.Horizontal,
		OverlapY: p.overlap.Vertical,
		NumPeaks: p.peaks,
		MaxDispX: p.maxDisp.X,
		MaxDispY: p.maxDisp.Y,
	}, nil
}
