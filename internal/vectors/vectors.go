// Package vectors holds the reference scenarios of the bfix codec.
// They are stored as YAML so the diagnostic harness can be pointed at other files.
package vectors

import (
	"bytes"
	_ "embed" // for the default vector file
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/icza/bfix"
)

//go:embed vectors.yaml
var defaultVectors []byte

// Step is one Insert or Extract call. Value is the inserted or expected value.
type Step struct {
	Offset int    `yaml:"offset"`
	Len    int    `yaml:"len"`
	Value  uint64 `yaml:"value"`
	Endian string `yaml:"endian"` // "big" (default) or "little"
}

// Field returns the descriptor of the step.
func (s Step) Field() (bfix.Field, error) {
	e, err := ParseEndian(s.Endian)
	return bfix.Field{Offset: s.Offset, Len: s.Len, Endian: e}, err
}

// Scenario is a sequence of inserts on a zeroed buffer, the expected buffer
// content, and extracts on the result.
type Scenario struct {
	Name     string `yaml:"name"`
	Size     int    `yaml:"size"`
	Inserts  []Step `yaml:"inserts"`
	Want     string `yaml:"want"` // space separated hex bytes
	Extracts []Step `yaml:"extracts"`
}

// WantBytes decodes Want.
func (s *Scenario) WantBytes() ([]byte, error) {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s.Want), ""))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: bad want: %w", s.Name, err)
	}
	return b, nil
}

// Apply runs the inserts of the scenario on a zeroed buffer of Size bytes.
func (s *Scenario) Apply() ([]byte, error) {
	buf := make([]byte, s.Size)
	for _, st := range s.Inserts {
		f, err := st.Field()
		if err != nil {
			return nil, err
		}
		if err = f.Put(buf, st.Value); err != nil {
			return nil, fmt.Errorf("scenario %q: insert %v: %w", s.Name, f, err)
		}
	}
	return buf, nil
}

// ErrorCase is a call with bad arguments and the expected return code.
// Endian is numeric here so unrecognized selectors can be expressed.
type ErrorCase struct {
	Offset int `yaml:"offset"`
	Len    int `yaml:"len"`
	Endian int `yaml:"endian"`
	Code   int `yaml:"code"`
}

// Set is the content of a vector file.
type Set struct {
	Scenarios []Scenario  `yaml:"scenarios"`
	Errors    []ErrorCase `yaml:"errors"`
}

// Default returns the built-in vectors.
func Default() (*Set, error) {
	return Decode(bytes.NewReader(defaultVectors))
}

// Load reads a vector file from disk.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Decode parses a vector file and checks that every step names a known endianness.
func Decode(r io.Reader) (*Set, error) {
	set := &Set{}
	if err := yaml.NewDecoder(r).Decode(set); err != nil {
		return nil, fmt.Errorf("decode vectors: %w", err)
	}

	for i := range set.Scenarios {
		sc := &set.Scenarios[i]
		for _, steps := range [][]Step{sc.Inserts, sc.Extracts} {
			for _, st := range steps {
				if _, err := ParseEndian(st.Endian); err != nil {
					return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
				}
			}
		}
		if _, err := sc.WantBytes(); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// ParseEndian maps the textual endianness of a step to a bfix.Endian.
// The empty string means big endian.
func ParseEndian(s string) (bfix.Endian, error) {
	switch strings.ToLower(s) {
	case "", "big":
		return bfix.BigEndian, nil
	case "little":
		return bfix.LittleEndian, nil
	default:
		return 0, fmt.Errorf("unknown endian %q", s)
	}
}
