package format

import (
	"errors"
	"fmt"
	"slices"
)

// Format selects the surface syntax used when reading or writing a document.
type Format int

const (
	// FloydFormat is the relaxed native syntax.
	FloydFormat Format = iota
	// JSONFormat is strict JSON.
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

type formatInfo struct {
	names  []string // canonical name first
	suffix string
}

var formats = map[Format]formatInfo{
	FloydFormat: {names: []string{"floyd", "fdf", "f"}, suffix: ".fdf"},
	JSONFormat:  {names: []string{"json", "j"}, suffix: ".json"},
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{FloydFormat, JSONFormat}
}

// ParseFormat accepts a format's name or one of its abbreviations.
func ParseFormat(v string) (Format, error) {
	for _, f := range AllFormats() {
		if slices.Contains(formats[f].names, v) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q, want one of %v", ErrBadFormat, v, AllFormats())
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	info, ok := formats[f]
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a format>", int(f))
	}
	return []byte(info.names[0]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool  { return f == JSONFormat }
func (f Format) IsFloyd() bool { return f == FloydFormat }

// Suffix returns the file extension for this format, including the dot,
// or "" for an unknown format.
func (f Format) Suffix() string {
	return formats[f].suffix
}
