package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	schemaData "github.com/codefind/codefind-cli/schema"
)

// ValidateAgainstSchema checks the merged configuration against the embedded
// codefind JSON Schema. The config is marshaled to JSON first so empty
// optional fields drop out before the enum checks run.
func ValidateAgainstSchema(cfg Config) error {
	if len(schemaData.Bytes) == 0 {
		return errors.New("config schema not embedded")
	}
	doc, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	res, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData.Bytes),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("config schema: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New("config schema validation failed: " + strings.Join(msgs, "; "))
}
