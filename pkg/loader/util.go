package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/OFFIS-RIT/lingraph/pkg/common"

	"github.com/invopop/jsonschema"
	"github.com/kaptinlin/jsonrepair"
)

var (
	ErrEmptyDocument   = errors.New("document has no sentences")
	ErrInvalidDocument = errors.New("invalid document")
)

// stripDuplicateLeadingBrace turns "{ {..." into "{...".
func stripDuplicateLeadingBrace(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		rest := strings.TrimSpace(s[1:])
		if strings.HasPrefix(rest, "{") {
			return rest
		}
	}
	return s
}

// GenerateSchema creates a JSON Schema from the given Go type.
func GenerateSchema(value any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	v := reflect.New(t).Interface()
	return reflector.Reflect(v)
}

// DocumentSchema returns the JSON Schema of the parsed-document input.
func DocumentSchema() *jsonschema.Schema {
	return GenerateSchema(common.Document{})
}

// UnmarshalFlexible decodes a document export that may have passed through
// tools which re-encode or mangle JSON. Plain JSON is tried first, then a
// JSON string holding the export, then a jsonrepair pass.
//
//	var doc common.Document
//	UnmarshalFlexible(`{"id": "doc-1", "sentences": []}`, &doc)       // plain
//	UnmarshalFlexible(`"{\"id\": \"doc-1\"}"`, &doc)                // string-wrapped
//	UnmarshalFlexible(`{id: "doc-1", sentences: [],}`, &doc)         // repaired
func UnmarshalFlexible(input string, out any) error {
	input = strings.TrimSpace(input)

	if err := json.Unmarshal([]byte(input), out); err == nil {
		return nil
	}

	var asString string
	if err := json.Unmarshal([]byte(input), &asString); err == nil {
		asString = strings.TrimSpace(asString)
		if err := json.Unmarshal([]byte(asString), out); err == nil {
			return nil
		}
		input = asString
	}

	input = stripDuplicateLeadingBrace(input)
	repaired, err := jsonrepair.JSONRepair(input)
	if err != nil {
		return fmt.Errorf("json repair failed: %w", err)
	}

	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return fmt.Errorf("unmarshal failed after repair: %w", err)
	}

	return nil
}

// ParseDocument decodes a parsed-document export and validates every
// sentence in it.
func ParseDocument(raw []byte) (*common.Document, error) {
	var doc common.Document
	if err := UnmarshalFlexible(string(raw), &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode: %w", ErrInvalidDocument, err)
	}
	if doc.Empty() {
		return nil, ErrEmptyDocument
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}
