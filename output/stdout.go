package output

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jakopako/domsurfer/utils"
	"github.com/olekukonko/tablewriter"
)

// StdoutWriter renders results as a table.
type StdoutWriter struct {
	out       io.Writer
	maxLength int
	logger    *slog.Logger
}

// NewStdoutWriter returns a new StdoutWriter
func NewStdoutWriter(wc *WriterConfig, out io.Writer) *StdoutWriter {
	return &StdoutWriter{
		out:       out,
		maxLength: wc.MaxValueLength,
		logger:    slog.With(slog.String("writer", STDOUT_WRITER_TYPE)),
	}
}

func (w *StdoutWriter) Write(results []Result) error {
	defer closeOutput(w.out)
	table := tablewriter.NewWriter(w.out)
	table.Header("Index", "Tag", "Classes", "Value")
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.Index),
			r.Tag,
			strings.Join(r.Classes, " "),
			utils.ShortenString(r.Value, w.maxLength),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	table.Footer("", "", "total", strconv.Itoa(len(results)))
	if err := table.Render(); err != nil {
		return err
	}
	w.logger.Debug("wrote results", slog.Int("results", len(results)))
	return nil
}
