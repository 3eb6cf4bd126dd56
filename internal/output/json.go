package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// jsonWriter writes documents as a pretty JSON value (single document), a
// JSON array (several), or newline-delimited JSON in lines mode.
type jsonWriter struct {
	w     *bufio.Writer
	lines bool
	docs  []any
}

func newJSONWriter(w io.Writer, lines bool) *jsonWriter {
	return &jsonWriter{w: bufio.NewWriter(w), lines: lines}
}

func (w *jsonWriter) Write(doc any) error {
	if !w.lines {
		w.docs = append(w.docs, doc)
		return nil
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *jsonWriter) Flush() error {
	if w.lines {
		return w.w.Flush()
	}

	var out any = w.docs
	if len(w.docs) == 1 {
		out = w.docs[0]
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}
