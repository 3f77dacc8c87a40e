// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"github.com/go-viper/mapstructure/v2"
)

// FromStruct flattens a struct, or a pointer to one, into a Map.
//
// Field names are taken from the "config" struct tag, falling back to
// the field name. Nested structs become nested maps. Every field is
// present, so zero values are found rather than absent; tag a field
// with ",omitempty" to leave it out when it is the zero value.
func FromStruct(v any) (Map, error) {
	m := make(map[string]any)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  &m,
	})
	if err != nil {
		return nil, err
	}

	err = dec.Decode(v)
	if err != nil {
		return nil, err
	}
	return Map(m), nil
}
