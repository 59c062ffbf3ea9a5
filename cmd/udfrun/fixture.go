package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rulego/tableudf/types"
)

// Fixture is a table plus call parameters as stored in a YAML or JSON file.
type Fixture struct {
	Function string         `yaml:"function,omitempty"`
	Args     []any          `yaml:"args,omitempty"`
	KwArgs   map[string]any `yaml:"kwargs,omitempty"`
	Names    []string       `yaml:"names"`
	Types    []string       `yaml:"types"`
	Rows     [][]any        `yaml:"rows"`
}

// ReadFixture decodes a fixture. JSON input is accepted as YAML.
func ReadFixture(r io.Reader) (*Fixture, error) {
	var fx Fixture
	if err := yaml.NewDecoder(r).Decode(&fx); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &fx, nil
}

// Table converts the fixture to a validated table. YAML integers become int64 and
// strings in BINARY columns become []byte, matching what the host sends.
func (fx *Fixture) Table() (*types.Table, error) {
	rows := make([][]any, 0, len(fx.Rows)+2)
	names := make([]any, len(fx.Names))
	for i, n := range fx.Names {
		names[i] = n
	}
	tags := make([]any, len(fx.Types))
	for i, tag := range fx.Types {
		tags[i] = tag
	}
	rows = append(rows, names, tags)
	rows = append(rows, fx.Rows...)

	t, err := types.FromRows(rows)
	if err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		for c, v := range row {
			row[c] = normalise(t.Types[c], v)
		}
	}
	return t, nil
}

func normalise(dt types.DataType, v any) any {
	switch x := v.(type) {
	case int:
		if dt == types.Double {
			return float64(x)
		}
		return int64(x)
	case string:
		if dt == types.Binary {
			return []byte(x)
		}
	}
	return v
}

// FixtureFromTable is the inverse of Table; []byte cells are written as text.
func FixtureFromTable(t *types.Table) *Fixture {
	fx := &Fixture{
		Names: append([]string(nil), t.Names...),
		Types: make([]string, len(t.Types)),
		Rows:  make([][]any, len(t.Rows)),
	}
	for i, dt := range t.Types {
		fx.Types[i] = string(dt)
	}
	for r, row := range t.Rows {
		out := make([]any, len(row))
		for c, v := range row {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			out[c] = v
		}
		fx.Rows[r] = out
	}
	return fx
}

// kwFlags collects repeated -kw key=value flags. Values are parsed as YAML scalars,
// so 300 is an integer, true a boolean and anything else a string.
type kwFlags map[string]any

func (k kwFlags) String() string {
	parts := make([]string, 0, len(k))
	for key, v := range k {
		parts = append(parts, fmt.Sprintf("%s=%v", key, v))
	}
	return strings.Join(parts, ",")
}

func (k kwFlags) Set(s string) error {
	key, raw, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return fmt.Errorf("want key=value, got %q", s)
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		v = raw
	}
	k[key] = v
	return nil
}
