package soil

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Document is a sample as exchanged in JSON files: the measured properties
// at the top level, plus an optional identifier and an optional explicit
// classifier kind.
type Document struct {
	ID     string
	Kind   Kind
	Sample Sample
}

const documentSchemaURL = "schema://soil-sample.json"

// documentSchema returns the JSON schema of a sample document. Properties
// may be null, which reads as not measured.
func documentSchema() map[string]any {
	props := map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "Free-form sample identifier",
		},
		"kind": map[string]any{
			"type":        "string",
			"enum":        []any{string(KindFine), string(KindCoarse)},
			"description": "Classifier to use; inferred from grain fractions when omitted",
		},
	}
	for _, p := range AllProperties() {
		def := map[string]any{
			"type":        []any{"number", "null"},
			"minimum":     domains[p].min,
			"description": p.DisplayName(),
		}
		if p.IsPercent() {
			def["maximum"] = domains[p].max
		}
		props[string(p)] = def
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func sampleSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, so round-trip the
		// definition through encoding/json.
		raw, err := json.Marshal(documentSchema())
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(documentSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(documentSchemaURL)
	})
	return compiledSchema, compileErr
}

// ParseDocument decodes and validates a JSON sample document. Schema
// violations are reported as *InputError.
func ParseDocument(raw []byte) (Document, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Document{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := sampleSchema()
	if err != nil {
		return Document{}, fmt.Errorf("compile sample schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return Document{}, &InputError{Reason: fmt.Sprintf("sample document: %v", err)}
	}

	obj := parsed.(map[string]any)
	doc := Document{Sample: make(Sample)}
	for k, v := range obj {
		switch k {
		case "id":
			doc.ID = v.(string)
		case "kind":
			doc.Kind = Kind(v.(string))
		default:
			if f, ok := v.(float64); ok {
				doc.Sample[Property(k)] = f
			}
		}
	}
	return doc, nil
}

// ParseSample decodes a JSON sample document and returns its properties.
func ParseSample(raw []byte) (Sample, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}
	return doc.Sample, nil
}

// ClassifyDocument classifies a document with its explicit kind, falling
// back to Classify when the kind is not set.
func ClassifyDocument(d Document) (*Result, error) {
	switch d.Kind {
	case KindFine:
		return ClassifyFine(d.Sample)
	case KindCoarse:
		return ClassifyCoarse(d.Sample)
	default:
		return Classify(d.Sample)
	}
}

// MarshalJSON encodes the document back to its flat wire form.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Sample)+2)
	for k, v := range d.Sample {
		out[string(k)] = v
	}
	if d.ID != "" {
		out["id"] = d.ID
	}
	if d.Kind != "" {
		out["kind"] = string(d.Kind)
	}
	return json.Marshal(out)
}
