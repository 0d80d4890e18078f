package services

import (
	"context"
	"encoding/json"
)

type SchemaType string

const (
	SchemaString  SchemaType = "string"
	SchemaInteger SchemaType = "integer"
	SchemaNumber  SchemaType = "number"
	SchemaBoolean SchemaType = "boolean"
	SchemaArray   SchemaType = "array"
	SchemaObject  SchemaType = "object"
)

// Schema is a provider-neutral JSON schema subset used to constrain model output.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

func ObjectSchema(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: SchemaObject, Properties: props, Required: required}
}

func Field(t SchemaType, description string) *Schema {
	return &Schema{Type: t, Description: description}
}

func ArrayOf(items *Schema, description string) *Schema {
	return &Schema{Type: SchemaArray, Items: items, Description: description}
}

type ExtractionInput struct {
	FileName string
	MIMEType string
	Data     []byte
}

// DataExtractor reads an uploaded file and returns JSON conforming to schema.
type DataExtractor interface {
	Extract(ctx context.Context, in ExtractionInput, schema *Schema) (json.RawMessage, error)
}
