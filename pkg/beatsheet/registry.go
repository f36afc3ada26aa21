package beatsheet

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Registry maps template names to templates. It always contains the
// built-ins; custom templates can be layered on from a directory of
// YAML files. A Registry is immutable after construction apart from
// LoadDir, so build it once at startup.
type Registry struct {
	templates map[string]Template
}

// NewRegistry returns a registry holding the built-in templates.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]Template, len(genreTemplates)+1)}
	r.templates[DefaultTemplateName] = defaultTemplate
	for name, t := range genreTemplates {
		r.templates[name] = t
	}
	return r
}

// Lookup resolves a template name. Unrecognized names fall back to the
// default template rather than failing; generation must always
// succeed.
func (r *Registry) Lookup(name string) Template {
	if t, ok := r.templates[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return r.templates[DefaultTemplateName]
}

// Names returns all registered template names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadDir reads every .yaml/.yml file under dir as a custom template
// and registers it under its declared name. Built-in names cannot be
// overridden. A missing directory is not an error; a malformed file
// is.
func (r *Registry) LoadDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		t, err := LoadTemplateFile(path)
		if err != nil {
			return fmt.Errorf("template %s: %w", filepath.Base(path), err)
		}

		name := strings.ToLower(t.Name)
		if name == DefaultTemplateName {
			return fmt.Errorf("template %s: name %q is reserved", filepath.Base(path), t.Name)
		}
		if _, builtin := genreTemplates[name]; builtin {
			return fmt.Errorf("template %s: name %q shadows a built-in template", filepath.Base(path), t.Name)
		}
		r.templates[name] = t
		return nil
	})
}

// LoadTemplateFile parses and validates a single YAML template file.
func LoadTemplateFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("failed to read template file: %w", err)
	}

	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Template{}, fmt.Errorf("failed to unmarshal template: %w", err)
	}

	if err := ValidateTemplate(t); err != nil {
		return Template{}, err
	}
	return t, nil
}

var validate = validator.New()

// ValidateTemplate checks structural validity: required fields,
// percentage bounds, and non-decreasing beat order. Ties are allowed.
func ValidateTemplate(t Template) error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("template %q failed validation: %w", t.Name, err)
	}
	for i := 1; i < len(t.Beats); i++ {
		if t.Beats[i].Percentage < t.Beats[i-1].Percentage {
			return fmt.Errorf("template %q: beat %q at %.1f%% is out of order (previous beat at %.1f%%)",
				t.Name, t.Beats[i].Name, t.Beats[i].Percentage, t.Beats[i-1].Percentage)
		}
	}
	return nil
}
