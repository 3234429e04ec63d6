package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

// names lists the accepted names of each format, canonical name first.
var names = map[Format][]string{
	JSONFormat: {"json", "j"},
	YAMLFormat: {"yaml", "y", "yml"},
}

func ParseFormat(v string) (Format, error) {
	for _, f := range AllFormats() {
		for _, name := range names[f] {
			if v == name {
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	if ns := names[f]; len(ns) > 0 {
		return ns[0]
	}
	return fmt.Sprintf("<format %d>", int(f))
}

func (f Format) MarshalText() ([]byte, error) {
	if _, ok := names[f]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the canonical file extension of f, including the dot.
func (f Format) Suffix() string {
	if _, ok := names[f]; !ok {
		return ""
	}
	return "." + f.String()
}

// FromPath guesses the format of a file from its extension, defaulting
// to JSON.
func FromPath(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, err := ParseFormat(ext); err == nil && len(ext) > 1 {
		return f
	}
	return JSONFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat}
}
