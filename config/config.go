// Package config loads import settings from YAML files.
//
// Example file:
//
//	format: matrix
//	delimiter: ","
//	parameters: [nodeid, edge_weights]
//	graph:
//	  directed: true
//	  weighted: true
//	  loops: true
//	  multi_edges: false
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/csvgraph/core"
	"github.com/katalvlaran/csvgraph/csvimport"
)

// ErrInvalidConfig wraps every load, parse and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// File mirrors the YAML document.
type File struct {
	Format     string   `yaml:"format" validate:"required,csvformat"`
	Delimiter  string   `yaml:"delimiter" validate:"omitempty,csvdelim"`
	Parameters []string `yaml:"parameters" validate:"dive,csvparam"`
	Graph      Graph    `yaml:"graph"`
}

// Graph holds the core.Graph construction flags.
type Graph struct {
	Directed   bool `yaml:"directed"`
	Weighted   bool `yaml:"weighted"`
	Loops      bool `yaml:"loops"`
	MultiEdges bool `yaml:"multi_edges"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("csvformat", func(fl validator.FieldLevel) bool {
		_, err := csvimport.ParseFormat(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("csvparam", func(fl validator.FieldLevel) bool {
		_, err := csvimport.ParseParameter(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("csvdelim", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		r, size := utf8.DecodeRuneInString(s)
		return size == len(s) && csvimport.ValidDelimiter(r)
	})
}

// Default returns the settings used when no file is given:
// edge list, ';' delimiter, directed graph without weights.
func Default() *File {
	return &File{
		Format:    csvimport.EdgeList.String(),
		Delimiter: string(csvimport.DefaultDelimiter),
		Graph:     Graph{Directed: true},
	}
}

// Load reads and validates a YAML file. Unset keys keep Default values.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	f := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate checks field values.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// ImportOptions converts the file into csvimport options.
// The file must have passed Validate.
func (f *File) ImportOptions() ([]csvimport.Option, error) {
	format, err := csvimport.ParseFormat(f.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	params := make([]csvimport.Parameter, 0, len(f.Parameters))
	for _, name := range f.Parameters {
		p, err := csvimport.ParseParameter(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		params = append(params, p)
	}

	opts := []csvimport.Option{
		csvimport.WithFormat(format),
		csvimport.WithParameters(params...),
	}
	if f.Delimiter != "" {
		r, _ := utf8.DecodeRuneInString(f.Delimiter)
		if !csvimport.ValidDelimiter(r) {
			return nil, fmt.Errorf("%w: delimiter %q", ErrInvalidConfig, f.Delimiter)
		}
		opts = append(opts, csvimport.WithDelimiter(r))
	}

	return opts, nil
}

// GraphOptions converts the graph section into core options.
func (f *File) GraphOptions() []core.GraphOption {
	opts := []core.GraphOption{core.WithDirected(f.Graph.Directed)}
	if f.Graph.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	if f.Graph.Loops {
		opts = append(opts, core.WithLoops())
	}
	if f.Graph.MultiEdges {
		opts = append(opts, core.WithMultiEdges())
	}

	return opts
}
