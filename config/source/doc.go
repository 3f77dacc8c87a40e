// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package source provides implementations of config.Source.
//
// Document based sources (YAML, JSON, files, viper, structs) are read
// once, when they are constructed, into a [Map]. Lookups never perform
// I/O and never fail; a value which cannot be found is simply absent.
//
// Sources can be layered with [Or]:
//
//	fileSrc, err := source.File(os.DirFS("/etc/app"), "config.yaml")
//	if err != nil {
//	    return err
//	}
//	src := source.Or(source.FromEnv(source.EnvPrefix("APP")), fileSrc)
package source
