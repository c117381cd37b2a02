package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeSchema))
})

// ValidateJSON validates a raw request body against resume.schema.json.
func ValidateJSON(raw []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}

// ValidateSkills checks that every selected label belongs to the taxonomy.
func ValidateSkills(s Skills) error {
	t := SkillTaxonomy()
	for cat, subs := range s {
		for sub, labels := range subs {
			for _, l := range labels {
				if !t.Contains(cat, sub, l) {
					return fmt.Errorf("skill %q is not offered under %s/%s", l, cat, sub)
				}
			}
		}
	}
	return nil
}

// DecodeRecord validates and decodes a request body into a ResumeRecord.
func DecodeRecord(raw []byte) (ResumeRecord, error) {
	var rec ResumeRecord
	if err := ValidateJSON(raw); err != nil {
		return rec, err
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("decode record: %w", err)
	}
	if err := ValidateSkills(rec.Skills); err != nil {
		return rec, err
	}
	return rec, nil
}
