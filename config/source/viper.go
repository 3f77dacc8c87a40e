// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"github.com/z5labs/typedconfig/config"
	"github.com/z5labs/typedconfig/config/key"

	"github.com/spf13/viper"
)

// ViperSource adapts a *viper.Viper to config.Source.
//
// Keys are matched the way viper matches them, case-insensitively on
// the dotted path. Values and lists are converted exactly as Map does.
type ViperSource struct {
	v *viper.Viper
}

var _ config.ListSource = ViperSource{}

// Viper returns a Source reading from v. A nil v reads from viper's
// global instance.
func Viper(v *viper.Viper) ViperSource {
	if v == nil {
		v = viper.GetViper()
	}
	return ViperSource{v: v}
}

// Lookup implements the config.Source interface.
func (src ViperSource) Lookup(path key.Path) (string, bool) {
	if len(path) == 0 {
		return "", false
	}

	k := path.String()
	if !src.v.IsSet(k) {
		return "", false
	}
	return leaf(src.v.Get(k))
}

// LookupList implements the config.ListSource interface.
func (src ViperSource) LookupList(path key.Path) (string, []string, bool) {
	if len(path) == 0 {
		return "", nil, false
	}

	k := path.String()
	if !src.v.IsSet(k) {
		return "", nil, false
	}
	return listLeaf(src.v.Get(k))
}

// RenderPath implements the config.Source interface.
func (src ViperSource) RenderPath(path key.Path) string {
	return path.String()
}
