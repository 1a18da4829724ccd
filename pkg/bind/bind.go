// Package bind decodes a JSON draft into a struct and validates it. It serves
// both sides: the CLI reading draft files, and the stub server reading
// request bodies.
package bind

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shashiranjanraj/shopctl/pkg/validate"
)

// JSON decodes r as JSON into dest and runs validation.
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the payload is malformed JSON.
func JSON(r io.Reader, dest interface{}) (errs map[string]string, err error) {
	dec := json.NewDecoder(r)
	if err = dec.Decode(dest); err != nil {
		return nil, fmt.Errorf("bind: invalid JSON: %w", err)
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}
