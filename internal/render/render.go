// Package render writes parsed functions as JSON or YAML.
package render

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/fossabot/parse-function/jsextract"
	"github.com/fossabot/parse-function/parsefn"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is a parsed function plus where it came from.
type Record struct {
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	Line int    `json:"line,omitempty" yaml:"line,omitempty"`
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	parsefn.Function `yaml:",inline"`
}

// FromSource parses text given directly by the user.
func FromSource(src string) Record {
	return Record{Function: parsefn.ParseString(src)}
}

// FromFunc parses a function extracted from a file.
func FromFunc(f jsextract.Func) Record {
	return Record{
		File:     f.File,
		Line:     f.Line,
		Kind:     f.Kind.String(),
		Function: parsefn.Parse(f),
	}
}

// Write encodes records to w in the given format.
func Write(w io.Writer, format string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	switch format {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
