package options

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/piv/entity/mode"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFromReader(t *testing.T) {
	src := "interrogation_window_x:32\n#comment\n\nwindow_overlap_x:8\n"

	got, err := FromReader(strings.NewReader(src), "test.cfg", mode.Strict)
	require.NoError(t, err)
	assert.Equal(t, Map{"interrogation_window_x": "32", "window_overlap_x": "8"}, got)
}

func TestFromReader_LastDuplicateWins(t *testing.T) {
	src := "num_ccf_peaks:3\nnum_ccf_peaks:5\nnum_ccf_peaks:4"

	got, err := FromReader(strings.NewReader(src), "dup.cfg", mode.Strict)
	require.NoError(t, err)
	assert.Equal(t, Map{"num_ccf_peaks": "4"}, got)
}

func TestFromReader_CRLF(t *testing.T) {
	got, err := FromReader(strings.NewReader("interrogation_window_y:24\r\n"), "crlf.cfg", mode.Strict)
	require.NoError(t, err)
	assert.Equal(t, "24", got["interrogation_window_y"])
}

func TestFromReader_Strict(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
		wantErr  error
	}{
		{"missing colon", "interrogation_window_x:32\nwindow_overlap_x 8\n", 2, ErrMissingColon},
		{"empty key", "# header\n:8\n", 2, ErrEmptyKey},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromReader(strings.NewReader(tc.src), "bad.cfg", mode.Strict)
			require.ErrorIs(t, err, tc.wantErr)

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
			assert.Equal(t, "bad.cfg", formatErr.Path)
			assert.Equal(t, tc.wantLine, formatErr.Line)
			assert.Contains(t, err.Error(), "bad.cfg:")
		})
	}
}

func TestFromReader_LenientDropsAmbiguousLines(t *testing.T) {
	src := "interrogation_window_x:32\nwindow_overlap_x 8\n:9\nnum_ccf_peaks:2\n"

	got, err := FromReader(strings.NewReader(src), "lenient.cfg", mode.Lenient)
	require.NoError(t, err)
	assert.Equal(t, Map{"interrogation_window_x": "32", "num_ccf_peaks": "2"}, got)
}

func TestParse_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.cfg")

	got, err := Parse(path, mode.Strict)
	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)

	var srcErr *SourceError
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, path, srcErr.Path)
}

func TestParse_DispatchesOnExtension(t *testing.T) {
	want := Map{"interrogation_window_x": "32", "window_overlap_x": "8"}

	tests := []struct {
		name    string
		content string
	}{
		{"options.cfg", "interrogation_window_x:32\nwindow_overlap_x:8\n"},
		{"options.toml", "interrogation_window_x = 32\nwindow_overlap_x = \"8\"\n"},
		{"options.yaml", "interrogation_window_x: 32\nwindow_overlap_x: \"8\"\n"},
		{"options.YML", "interrogation_window_x: 32\nwindow_overlap_x: 8\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(writeFile(t, tc.name, tc.content), mode.Strict)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestStructuredSources(t *testing.T) {
	t.Run("empty yaml", func(t *testing.T) {
		got, err := FromYAML(strings.NewReader(""), "empty.yaml")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("yaml null is empty", func(t *testing.T) {
		got, err := FromYAML(strings.NewReader("num_ccf_peaks:\n"), "null.yaml")
		require.NoError(t, err)
		assert.Equal(t, Map{"num_ccf_peaks": ""}, got)
	})

	t.Run("toml float kept verbatim", func(t *testing.T) {
		got, err := FromTOML(strings.NewReader("num_ccf_peaks = 2.5\n"), "f.toml")
		require.NoError(t, err)
		assert.Equal(t, Map{"num_ccf_peaks": "2.5"}, got)
	})

	t.Run("nested table", func(t *testing.T) {
		_, err := FromTOML(strings.NewReader("[window]\nx = 32\n"), "nested.toml")
		require.ErrorIs(t, err, ErrNestedValue)

		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "window", formatErr.Text)
	})

	t.Run("yaml list", func(t *testing.T) {
		_, err := FromYAML(strings.NewReader("interrogation_window_x: [16, 32]\n"), "list.yaml")
		assert.ErrorIs(t, err, ErrNestedValue)
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := FromTOML(strings.NewReader("interrogation_window_x = = 3"), "bad.toml")
		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr)
		assert.False(t, errors.Is(err, ErrNestedValue))
	})
}

func TestMerge(t *testing.T) {
	base := Map{"interrogation_window_x": "32", "num_ccf_peaks": "3"}
	overrides := Map{"num_ccf_peaks": "5", "window_overlap_y": "4"}

	merged := base.Merge(overrides)

	assert.Equal(t, Map{
		"interrogation_window_x": "32",
		"num_ccf_peaks":          "5",
		"window_overlap_y":       "4",
	}, merged)
	assert.Equal(t, "3", base["num_ccf_peaks"], "receiver must not change")

	var empty Map
	assert.Equal(t, overrides, empty.Merge(overrides))
}
