// Package payload reads feedback payloads from YAML documents.
package payload

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"oleander_app_echo/internal/app"
)

// ErrPayloadNotFound is returned when the payload file does not exist.
var ErrPayloadNotFound = errors.New("payload file not found")

// scalar keeps the literal text of a YAML scalar, so "30", "0x10" and "5.5"
// reach the validator exactly as written.
type scalar string

func (s *scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a plain value", node.Line)
	}
	if node.ShortTag() == "!!null" {
		*s = ""
		return nil
	}
	*s = scalar(node.Value)
	return nil
}

type document struct {
	Name     scalar `yaml:"name"`
	Email    scalar `yaml:"email"`
	Age      scalar `yaml:"age"`
	Feedback scalar `yaml:"feedback"`
}

// Load decodes a single payload document. Unknown keys are rejected and an
// empty document yields an empty payload.
func Load(r io.Reader) (app.FormData, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return app.FormData{}, nil
		}
		return app.FormData{}, fmt.Errorf("decode payload: %w", err)
	}

	return app.FormData{
		Name:     string(doc.Name),
		Email:    string(doc.Email),
		Age:      string(doc.Age),
		Feedback: string(doc.Feedback),
	}, nil
}

// LoadFile reads a payload from path; "-" reads stdin instead.
func LoadFile(path string, stdin io.Reader) (app.FormData, error) {
	if path == "-" {
		return Load(stdin)
	}

	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		if os.IsNotExist(err) {
			return app.FormData{}, ErrPayloadNotFound
		}
		return app.FormData{}, err
	}
	defer f.Close()

	return Load(f)
}
