package options

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/piv/entity/mode"
)

const maxLineSize = 1 << 20

// Map holds raw option values by key. Values are resolved elsewhere.
type Map map[string]string

// Merge returns a new map holding m overlaid with other. Keys in other win.
func (m Map) Merge(other Map) Map {
	merged := make(Map, len(m)+len(other))
	for k, v := range m {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Parse opens path and reads it into a Map. The reader is chosen by file
// extension: .toml and .yaml/.yml are structured sources, anything else uses
// the line grammar. A path that cannot be opened is a *SourceError.
func Parse(path string, m mode.Mode) (Map, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FromTOML(file, path)
	case ".yaml", ".yml":
		return FromYAML(file, path)
	default:
		return FromReader(file, path, m)
	}
}

// FromReader reads key:value lines from r until EOF. Later duplicates of a
// key overwrite earlier ones. name is used in errors and log entries only.
func FromReader(r io.Reader, name string, m mode.Mode) (Map, error) {
	optionMap := make(Map)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		entry, ok, err := ParseLine(text)
		if err != nil {
			if m == mode.Strict {
				return nil, &FormatError{Path: name, Line: lineNo, Text: text, Err: err}
			}
			log.WithFields(log.Fields{
				"path":  name,
				"line":  lineNo,
				"error": err,
			}).Warn("Ignoring option line")
			continue
		}
		if !ok {
			continue
		}
		optionMap[entry.Key] = entry.Value
	}
	if err := scanner.Err(); err != nil {
		return nil, &SourceError{Path: name, Err: fmt.Errorf("failed to read line %d: %w", lineNo+1, err)}
	}

	log.WithFields(log.Fields{
		"path":    name,
		"lines":   lineNo,
		"entries": len(optionMap),
	}).Debug("Option file read")
	return optionMap, nil
}
