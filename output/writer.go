// Package output provides the interface and configuration for writers
// of query results.
package output

import (
	"fmt"
	"io"
	"os"
)

// Result is one matched element.
type Result struct {
	Index   int      `json:"index" yaml:"index"`
	Tag     string   `json:"tag" yaml:"tag"`
	Classes []string `json:"classes,omitempty" yaml:"classes,omitempty"`
	Value   string   `json:"value" yaml:"value"`
}

// Writer defines the interface for all writers that are responsible
// for writing query results to a specific output.
type Writer interface {
	Write(results []Result) error
}

// WriterConfig defines the necessary paramters to make a new writer.
type WriterConfig struct {
	Type           string `yaml:"type" env:"DOMSURFER_OUTPUT" env-default:"stdout"`
	FilePath       string `yaml:"filepath" env:"DOMSURFER_OUTPUT_FILEPATH"`
	MaxValueLength int    `yaml:"max_value_length" env-default:"60"`
}

const (
	STDOUT_WRITER_TYPE = "stdout"
	JSON_WRITER_TYPE   = "json"
	YAML_WRITER_TYPE   = "yaml"
)

// NewWriter returns the writer for wc.Type. Results go to wc.FilePath if
// set and to stdout otherwise.
func NewWriter(wc *WriterConfig) (Writer, error) {
	var out io.Writer = os.Stdout
	if wc.FilePath != "" {
		out = &fileOutput{path: wc.FilePath}
	}
	switch wc.Type {
	case STDOUT_WRITER_TYPE, "":
		return NewStdoutWriter(wc, out), nil
	case JSON_WRITER_TYPE:
		return NewJSONWriter(out), nil
	case YAML_WRITER_TYPE:
		return NewYAMLWriter(out), nil
	default:
		return nil, fmt.Errorf("writer of type %s not implemented", wc.Type)
	}
}

// fileOutput creates the file on the first write.
type fileOutput struct {
	path string
	f    *os.File
}

func (fo *fileOutput) Write(p []byte) (int, error) {
	if fo.f == nil {
		f, err := os.Create(fo.path)
		if err != nil {
			return 0, fmt.Errorf("error while trying to open file: %w", err)
		}
		fo.f = f
	}
	return fo.f.Write(p)
}

func (fo *fileOutput) Close() error {
	if fo.f == nil {
		return nil
	}
	return fo.f.Close()
}

// closeOutput closes out if it is a file opened by NewWriter.
func closeOutput(out io.Writer) error {
	if fo, ok := out.(*fileOutput); ok {
		return fo.Close()
	}
	return nil
}
