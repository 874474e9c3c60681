package catalog

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schemas for the two catalog documents. A document that fails schema
// validation is treated the same as one that fails to parse.
const skillsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "technical_skills": {"type": "array", "items": {"type": "string"}},
    "soft_skills": {"type": "array", "items": {"type": "string"}},
    "certifications": {"type": "array", "items": {"type": "string"}},
    "languages": {"type": "array", "items": {"type": "string"}}
  },
  "additionalProperties": false
}`

const rolesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "job_roles": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "keywords": {"type": "array", "items": {"type": "string"}}
        },
        "required": ["title"],
        "additionalProperties": false
      }
    }
  },
  "required": ["job_roles"],
  "additionalProperties": false
}`

func validateSkillsDocument(data []byte) error {
	return validateAgainst(skillsSchema, data)
}

func validateRolesDocument(data []byte) error {
	return validateAgainst(rolesSchema, data)
}

// validateAgainst validates document content against schema content using
// string loaders.
func validateAgainst(schemaContent string, document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf(" %s: %s;", field, desc.Description()))
	}
	return fmt.Errorf("%s", strings.TrimSuffix(sb.String(), ";"))
}
