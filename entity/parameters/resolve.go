package parameters

import (
	"strconv"

	"github.com/AnkushinDaniil/piv/entity/options"
)

// step resolves one field. fallback may read fields set by earlier steps.
type step struct {
	key      string
	fallback func(p *Parameters) int
	assign   func(p *Parameters, v int)
}

func constant(v int) func(*Parameters) int {
	return func(*Parameters) int { return v }
}

func derivedMaxDisp(window int) int {
	return window/2 - 1
}

// pipeline is ordered: the max displacement defaults depend on the window
// size resolved in the first two steps.
var pipeline = []step{
	{KeyWindowX, constant(DefaultWin), func(p *Parameters, v int) { p.winSize.Width = v }},
	{KeyWindowY, constant(DefaultWin), func(p *Parameters, v int) { p.winSize.Height = v }},
	{KeyOverlapX, constant(DefaultOvlp), func(p *Parameters, v int) { p.overlap.Horizontal = v }},
	{KeyOverlapY, constant(DefaultOvlp), func(p *Parameters, v int) { p.overlap.Vertical = v }},
	{KeyNumPeaks, constant(DefaultPeaks), func(p *Parameters, v int) { p.peaks = v }},
	{
		KeyMaxDispX,
		func(p *Parameters) int { return derivedMaxDisp(p.winSize.Width) },
		func(p *Parameters, v int) { p.maxDisp.X = v },
	},
	{
		KeyMaxDispY,
		func(p *Parameters) int { return derivedMaxDisp(p.winSize.Height) },
		func(p *Parameters, v int) { p.maxDisp.Y = v },
	},
}

// Resolve turns an option map into Parameters. Absent keys and empty values
// take their default. The first value that is not a base-10 integer aborts
// resolution with a *ValueError.
func Resolve(m options.Map) (*Parameters, error) {
	p := &Parameters{}
	for _, s := range pipeline {
		v, err := intOrDefault(m, s.key, s.fallback(p))
		if err != nil {
			return nil, err
		}
		s.assign(p, v)
	}
	return p, nil
}

func intOrDefault(m options.Map, key string, fallback int) (int, error) {
	raw, ok := m[key]
	if !ok || raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ValueError{Key: key, Value: raw, Err: err}
	}
	return v, nil
}
