// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"os"
	"strings"

	"github.com/z5labs/typedconfig/config"
	"github.com/z5labs/typedconfig/config/key"
)

// Env represents a Source where its underlying values
// are extracted from environment variables.
//
// A path is mapped to a variable name with key.EnvName, so the path
// server.read-timeout with prefix APP reads APP_SERVER_READ_TIMEOUT.
// Failure messages name the variable rather than the dotted path.
type Env struct {
	prefix string
	vars   map[string]string
}

var _ config.Source = Env{}

type envOptions struct {
	prefix  string
	environ func() []string
}

// EnvOption configures an Env source.
type EnvOption func(*envOptions)

// EnvPrefix prepends prefix to every variable name.
func EnvPrefix(prefix string) EnvOption {
	return func(eo *envOptions) {
		eo.prefix = prefix
	}
}

// Environ replaces os.Environ as the provider of KEY=VALUE pairs.
func Environ(f func() []string) EnvOption {
	return func(eo *envOptions) {
		eo.environ = f
	}
}

// FromEnv returns a Source backed by a snapshot of the environment
// variables available to the current process.
func FromEnv(opts ...EnvOption) Env {
	eo := &envOptions{
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(eo)
	}

	vars := make(map[string]string)
	for _, pair := range eo.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		vars[k] = v
	}
	return Env{
		prefix: eo.prefix,
		vars:   vars,
	}
}

// Lookup implements the config.Source interface.
func (src Env) Lookup(path key.Path) (string, bool) {
	v, ok := src.vars[key.EnvName(src.prefix, path)]
	return v, ok
}

// RenderPath implements the config.Source interface.
func (src Env) RenderPath(path key.Path) string {
	return key.EnvName(src.prefix, path)
}
