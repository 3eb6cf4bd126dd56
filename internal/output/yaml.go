package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlWriter buffers documents and emits them as one YAML value on Flush.
type yamlWriter struct {
	w    *bufio.Writer
	docs []any
}

func newYAMLWriter(w io.Writer) *yamlWriter {
	return &yamlWriter{w: bufio.NewWriter(w)}
}

func (w *yamlWriter) Write(doc any) error {
	w.docs = append(w.docs, doc)
	return nil
}

func (w *yamlWriter) Flush() error {
	enc := yaml.NewEncoder(w.w)
	enc.SetIndent(2)

	var out any = w.docs
	if len(w.docs) == 1 {
		out = w.docs[0]
	}

	if err := enc.Encode(out); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}
