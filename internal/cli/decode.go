package cli

import (
	"io"
	"os"

	"github.com/andaru/pear/rest"
	"github.com/andaru/pear/tree"
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Document is one decoded input file as printed.
type Document struct {
	File   string      `json:"file" yaml:"file"`
	Kind   string      `json:"kind" yaml:"kind"`
	Record interface{} `json:"record" yaml:"record"`
}

type encoder interface {
	Encode(v interface{}) error
}

func newEncoder(w io.Writer, format string) (encoder, func() error) {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return enc, enc.Close
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc, func() error { return nil }
}

// decodeFiles decodes each named file and writes it to w. It stops at the
// first file which fails to decode.
func decodeFiles(stdin io.Reader, w io.Writer, cfg Config, files []string) error {
	enc, flush := newEncoder(w, cfg.Format)
	for _, file := range files {
		doc, err := decodeFile(stdin, file, cfg.DocumentKind())
		if err != nil {
			return errors.Wrapf(err, "decode %s", file)
		}
		if err := enc.Encode(doc); err != nil {
			return errors.Wrapf(err, "encode %s", file)
		}
	}
	return flush()
}

func decodeFile(stdin io.Reader, file string, kind rest.Kind) (Document, error) {
	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return Document{}, errors.WithStack(err)
		}
		defer f.Close()
		r = f
	}

	doc, err := tree.Parse(r)
	if err != nil {
		return Document{}, err
	}
	if kind == rest.KindUnknown {
		kind = rest.Detect(doc)
		logrus.WithField("file", file).Debugf("Detected %s document", kind)
	}
	record, err := rest.Decode(doc, kind)
	if err != nil {
		return Document{}, err
	}
	return Document{File: file, Kind: kind.String(), Record: record}, nil
}
