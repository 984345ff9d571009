package parameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetters(t *testing.T) {
	p := Default()

	p.SetWinWidth(64)
	p.SetWinHeight(32)
	p.SetOverlapHoriz(16)
	p.SetOverlapVert(8)
	p.SetNumPeaks(1)

	assert.Equal(t, Size{Width: 64, Height: 32}, p.WinSize())
	assert.Equal(t, 16, p.OverlapHoriz())
	assert.Equal(t, 8, p.OverlapVert())
	assert.Equal(t, 1, p.NumPeaks())
	// Max displacement keeps the value derived at resolution time.
	assert.Equal(t, 7, p.MaxDispX())
	assert.Equal(t, 7, p.MaxDispY())
}

func TestWinSizeIsACopy(t *testing.T) {
	p := Default()

	size := p.WinSize()
	size.Width = 128

	assert.Equal(t, 16, p.WinWidth())
}

func TestSummary(t *testing.T) {
	p := Default()
	p.SetWinWidth(32)
	p.SetOverlapVert(4)

	want := "Ix: 32\tIy: 16\nOx: 0\tOy: 4\nxMax: 7\tyMax: 7\nNo peaks: 3\n"
	assert.Equal(t, want, p.Summary())
	assert.Equal(t, want, p.String())
}

func TestFields(t *testing.T) {
	fields := Default().Fields()

	assert.Len(t, fields, 7)
	assert.Equal(t, 16, fields[KeyWindowX])
	assert.Equal(t, 3, fields[KeyNumPeaks])
	assert.Equal(t, 7, fields[KeyMaxDispY])
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())

	t.Run("overlap must stay below window", func(t *testing.T) {
		p := Default()
		p.SetOverlapHoriz(16)

		err := p.Validate()
		require.ErrorIs(t, err, ErrOutOfRange)
		assert.Contains(t, err.Error(), "window_overlap_x must be less than interrogation_window_x (16), got 16")
	})

	t.Run("every violation reported", func(t *testing.T) {
		p, err := Resolve(map[string]string{
			KeyWindowX:  "1",
			KeyWindowY:  "0",
			KeyOverlapY: "-2",
			KeyNumPeaks: "0",
		})
		require.NoError(t, err)

		err = p.Validate()
		require.ErrorIs(t, err, ErrOutOfRange)
		msg := err.Error()
		assert.Contains(t, msg, "5 errors occurred")
		for _, key := range []string{KeyWindowY, KeyOverlapY, KeyNumPeaks, KeyMaxDispX, KeyMaxDispY} {
			assert.Contains(t, msg, key)
		}
		assert.NotContains(t, msg, KeyOverlapX)
	})
}
