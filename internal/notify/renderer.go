package notify

import (
	"bytes"
	"fmt"
	"text/template"
)

// renderer renders small text templates for outbound messaging with strict
// missing-key semantics.
type renderer struct{}

func (renderer) render(name, tmpl string, data any) (string, error) {
	if tmpl == "" {
		return "", fmt.Errorf("notify: template text required")
	}
	t, err := template.New(name).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("notify: parse: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("notify: execute: %w", err)
	}
	return buf.String(), nil
}
