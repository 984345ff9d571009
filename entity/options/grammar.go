package options

import "strings"

// Entry is one key/value pair read from an option source.
type Entry struct {
	Key   string
	Value string
}

// ParseLine reads one line of the option file grammar.
//
// Blank lines and lines starting with '#' return ok == false and no error.
// Otherwise the line is split at its first colon: everything before it is the
// key, everything after it is the value, with no trimming. A line without a
// colon returns ErrMissingColon and a line starting with a colon returns
// ErrEmptyKey; the caller decides whether those are fatal.
func ParseLine(text string) (e Entry, ok bool, err error) {
	if text == "" || text[0] == '#' {
		return Entry{}, false, nil
	}
	i := strings.IndexByte(text, ':')
	switch {
	case i < 0:
		return Entry{}, false, ErrMissingColon
	case i == 0:
		return Entry{}, false, ErrEmptyKey
	}
	return Entry{Key: text[:i], Value: text[i+1:]}, true, nil
}
