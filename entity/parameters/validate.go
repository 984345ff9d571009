package parameters

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Validate checks the invariants downstream grid and correlation stages rely
// on and reports every violation at once. Resolve does not call it.
func (p *Parameters) Validate() error {
	var result *multierror.Error
	outOfRange := func(key, rule string, v int) {
		result = multierror.Append(result, fmt.Errorf("%w: %s %s, got %d", ErrOutOfRange, key, rule, v))
	}

	if p.winSize.Width <= 0 {
		outOfRange(KeyWindowX, "must be positive", p.winSize.Width)
	}
	if p.winSize.Height <= 0 {
		outOfRange(KeyWindowY, "must be positive", p.winSize.Height)
	}
	if p.overlap.Horizontal < 0 {
		outOfRange(KeyOverlapX, "must not be negative", p.overlap.Horizontal)
	} else if p.winSize.Width > 0 && p.overlap.Horizontal >= p.winSize.Width {
		outOfRange(KeyOverlapX, fmt.Sprintf("must be less than %s (%d)", KeyWindowX, p.winSize.Width), p.overlap.Horizontal)
	}
	if p.overlap.Vertical < 0 {
		outOfRange(KeyOverlapY, "must not be negative", p.overlap.Vertical)
	} else if p.winSize.Height > 0 && p.overlap.Vertical >= p.winSize.Height {
		outOfRange(KeyOverlapY, fmt.Sprintf("must be less than %s (%d)", KeyWindowY, p.winSize.Height), p.overlap.Vertical)
	}
	if p.peaks <= 0 {
		outOfRange(KeyNumPeaks, "must be positive", p.peaks)
	}
	if p.maxDisp.X < 0 {
		outOfRange(KeyMaxDispX, "must not be negative", p.maxDisp.X)
	}
	if p.maxDisp.Y < 0 {
		outOfRange(KeyMaxDispY, "must not be negative", p.maxDisp.Y)
	}

	return result.ErrorOrNil()
}
