// Package jsonschema holds the JSON Schema documents of the outbound request
// bodies and checks encoded documents against them.
package jsonschema

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"botschema/pkg/telegram"
)

//go:embed telegram/*.json
var files embed.FS

const rootDir = "telegram"

var notShowErrorListType = map[string]bool{
	"condition_else": true, "condition_then": true,
}

// Registry is a set of compiled schemas keyed by schema id. It is read-only
// after Load and safe for concurrent use.
type Registry struct {
	schemas map[string]*gojsonschema.Schema
}

// Load compiles the bundled request schemas.
func Load() (*Registry, error) {
	return LoadFS(files, rootDir)
}

// LoadFS compiles every .json file under dir. A schema is keyed by its $id,
// or by its path below dir without the extension.
func LoadFS(fsys fs.FS, dir string) (*Registry, error) {
	r := &Registry{schemas: map[string]*gojsonschema.Schema{}}
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		s, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("%s: %w", d.Name(), err)
		}

		var data map[string]interface{}
		if err := json.Unmarshal(s, &data); err != nil {
			return fmt.Errorf("%s: %w", d.Name(), err)
		}
		id, ok := data["$id"].(string)
		if !ok {
			id = strings.Trim(strings.TrimSuffix(strings.TrimPrefix(p, dir), path.Ext(p)), "/")
		}

		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(s))
		if err != nil {
			return fmt.Errorf("%s: %w", d.Name(), err)
		}
		r.schemas[id] = schema
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// IDs lists the loaded schema ids, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.schemas))
	for id := range r.schemas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Get returns the schema with the given id.
func (r *Registry) Get(schemaID string) (*gojsonschema.Schema, error) {
	schema, ok := r.schemas[schemaID]
	if !ok {
		return nil, fmt.Errorf("%w: schema %q", ErrSchemaNotFound, schemaID)
	}
	return schema, nil
}

// ValidateDocument checks a wire document against the schema with the given
// id. A failing document yields *Error.
func (r *Registry) ValidateDocument(schemaID string, document []byte) error {
	schema, err := r.Get(schemaID)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", telegram.ErrMalformedDocument, schemaID, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &Error{SchemaID: schemaID}
	for _, desc := range result.Errors() {
		if notShowErrorListType[desc.Type()] {
			continue
		}
		field := desc.Field()
		if desc.Type() == "required" {
			field = fmt.Sprintf("%s.%v", field, desc.Details()["property"])
		}
		field = strings.TrimPrefix(strings.TrimPrefix(field, "(root)"), ".")

		verr.Issues = append(verr.Issues, Issue{
			Field:       field,
			Type:        desc.Type(),
			Description: desc.Description(),
			cause:       mapIssue(schemaID, field, desc),
		})
	}
	if len(verr.Issues) == 0 {
		return nil
	}
	return verr
}

func mapIssue(schemaID, field string, desc gojsonschema.ResultError) error {
	switch desc.Type() {
	case "required":
		return &telegram.SchemaViolation{Entity: schemaID, Field: field}
	case "invalid_type":
		return &telegram.TypeMismatch{
			Entity:   schemaID,
			Field:    field,
			Expected: fmt.Sprint(desc.Details()["expected"]),
			Actual:   fmt.Sprint(desc.Details()["given"]),
		}
	}
	return nil
}

// ErrSchemaNotFound is returned for ids with no loaded schema.
var ErrSchemaNotFound = errors.New("jsonschema: not found")
