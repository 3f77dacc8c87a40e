// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import "github.com/z5labs/typedconfig/config/key"

// Optional lifts r into a Resolver for values which may legitimately be
// absent. It never reports NotFound for its own path:
//
//   - present and valid: ValueOf(v)
//   - present and invalid: the failures from r
//   - absent with a default: exactly the default, which may itself be None
//   - absent without a default: None
func Optional[T any](r Resolver[T]) Resolver[Value[T]] {
	return ResolverFunc[Value[T]](func(src Source, path key.Path, def Value[Value[T]]) Validated[Value[T]] {
		v := r.Resolve(src, path, None[T]())
		if v.IsValid() {
			return Valid(ValueOf(v.v))
		}
		if !absent(v.failures, src.RenderPath(path)) {
			return Validated[Value[T]]{failures: v.failures}
		}
		if d, ok := def.Value(); ok {
			return Valid(d)
		}
		return Valid(None[T]())
	})
}

// absent reports whether fs is exactly the NotFound failure for the
// rendered path, as opposed to a nested value being missing.
func absent(fs Failures, rendered string) bool {
	return len(fs) == 1 && fs[0].Kind == NotFound && fs[0].Path == rendered
}
