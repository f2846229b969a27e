// Package manifest reads the template catalogue published at the root of the template repository.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	schemagen "github.com/invopop/jsonschema"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/layervue/create-layervue/filesystem"
	"github.com/samber/lo"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrNoTemplates is returned for a manifest that lists nothing.
var ErrNoTemplates = errors.New("manifest lists no templates")

// Template is one entry of the catalogue.
type Template struct {
	// Name is shown in the template prompt.
	Name string `json:"name" jsonschema:"minLength=1"`
	// Description is shown next to the name.
	Description string `json:"description,omitempty"`
	// Path is the folder of the template inside the repository.
	Path string `json:"path" jsonschema:"minLength=1"`
}

const schemaResource = "manifest.schema.json"

var (
	compiled    *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// Schema returns the JSON Schema every manifest must satisfy.
func Schema() *schemagen.Schema {
	reflector := &schemagen.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect([]Template{})
	schema.Title = "Template manifest"
	return schema
}

func validator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		raw, err := json.Marshal(Schema())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaResource, doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		compiled, compileErr = c.Compile(schemaResource)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}

// Parse validates data against Schema and decodes it.
func Parse(data []byte) ([]Template, error) {
	schema, err := validator()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	var templates []Template
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	if len(templates) == 0 {
		return nil, ErrNoTemplates
	}

	return templates, nil
}

// Load reads and parses the manifest at path.
func Load(path string) ([]Template, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Find returns the template whose name (case-insensitive) or path equals query.
// The error suggests the closest name when nothing matches.
func Find(templates []Template, query string) (Template, error) {
	if t, ok := lo.Find(templates, func(t Template) bool {
		return strings.EqualFold(t.Name, query) || t.Path == query
	}); ok {
		return t, nil
	}

	if len(templates) == 0 {
		return Template{}, ErrNoTemplates
	}

	closest := lo.MinBy(templates, func(a, b Template) bool {
		return levenshtein.Distance(query, a.Name) < levenshtein.Distance(query, b.Name)
	})
	return Template{}, fmt.Errorf("unknown template %q, did you mean %q?", query, closest.Name)
}
