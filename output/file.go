package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// JSONWriter writes all results as one indented JSON array.
type JSONWriter struct {
	out    io.Writer
	logger *slog.Logger
}

func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{
		out:    out,
		logger: slog.With(slog.String("writer", JSON_WRITER_TYPE)),
	}
}

func (w *JSONWriter) Write(results []Result) error {
	defer closeOutput(w.out)
	if results == nil {
		results = []Result{}
	}
	// json.MarshalIndent would escape html characters like < and >
	// which are common in element values.
	buffer := &bytes.Buffer{}
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("error while encoding results: %w", err)
	}

	var indentBuffer bytes.Buffer
	if err := json.Indent(&indentBuffer, buffer.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("error while indenting json: %w", err)
	}
	if _, err := w.out.Write(indentBuffer.Bytes()); err != nil {
		return fmt.Errorf("error while writing json: %w", err)
	}
	w.logger.Debug("wrote results", slog.Int("results", len(results)))
	return nil
}

// YAMLWriter writes results as a YAML sequence.
type YAMLWriter struct {
	out    io.Writer
	logger *slog.Logger
}

func NewYAMLWriter(out io.Writer) *YAMLWriter {
	return &YAMLWriter{
		out:    out,
		logger: slog.With(slog.String("writer", YAML_WRITER_TYPE)),
	}
}

func (w *YAMLWriter) Write(results []Result) error {
	defer closeOutput(w.out)
	if results == nil {
		results = []Result{}
	}
	encoder := yaml.NewEncoder(w.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("error while writing yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	w.logger.Debug("wrote results", slog.Int("results", len(results)))
	return nil
}
