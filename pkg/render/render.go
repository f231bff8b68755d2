// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render loads job description templates and binds combination values
// into them. Placeholders use Go template syntax ({{.dataset}}); a placeholder
// without a bound value fails the render instead of substituting an empty
// string.
package render

import (
	"bytes"
	"io"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v2"
)

// Template wraps a parsed job description template. The template's content
// beyond its placeholders is opaque; the only contract is exact substitution
// of every placeholder.
type Template struct {
	name string
	tmpl *template.Template
}

// Load reads and parses the job template at path.
func Load(fsys afero.Fs, path string) (*Template, error) {
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read job template %q", path)
	}
	return Parse(filepath.Base(path), string(content))
}

// Parse parses template content under the given name.
func Parse(name, content string) (*Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse job template %q", name)
	}
	return &Template{name: name, tmpl: tmpl}, nil
}

// Render substitutes the given bindings into the template and verifies the
// result is well-formed YAML. A placeholder with no binding is an error.
func (t *Template) Render(bindings map[string]string) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, bindings); err != nil {
		return "", errors.Wrapf(err, "failed to execute job template %q", t.name)
	}
	if err := checkYAML(buf.Bytes()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// checkYAML decodes every document in the rendered manifest so a substitution
// that corrupts the YAML structure is caught before submission.
func checkYAML(manifest []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(manifest))
	for {
		var doc interface{}
		if err := decoder.Decode(&doc); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "rendered manifest is not valid YAML")
		}
	}
}
