// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/z5labs/typedconfig/internal/try"
)

// InvalidJsonError occurs if the underlying io.Reader contains invalid JSON.
type InvalidJsonError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidJsonError) Unwrap() error {
	return e.Cause
}

// FromJson reads a JSON object from r into a Map. If r is also an
// io.Closer it is closed. Numbers keep their literal form, so 8080 is
// looked up as "8080" rather than "8080.0".
func FromJson(r io.Reader) (_ Map, err error) {
	defer try.Close(&err, r)

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	m := make(map[string]any)
	err = dec.Decode(&m)
	if err != nil {
		return nil, InvalidJsonError{Cause: err}
	}
	return Map(m), nil
}
