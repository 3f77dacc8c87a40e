// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// FileReader is an io.Reader that handles opening a file for reading automatically.
type FileReader struct {
	path string

	openOnce sync.Once
	openErr  error
	fs       fs.FS
	file     io.ReadCloser
}

// NewFileReader configures a FileReader.
func NewFileReader(fs fs.FS, path string) *FileReader {
	return &FileReader{
		path: path,
		fs:   fs,
	}
}

// Read implements the io.Reader interface.
func (r *FileReader) Read(b []byte) (int, error) {
	r.openOnce.Do(func() {
		r.file, r.openErr = r.fs.Open(r.path)
	})
	if r.openErr != nil {
		return 0, r.openErr
	}
	return r.file.Read(b)
}

// Close implements the io.Closer interface.
func (r *FileReader) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	return err
}

// UnsupportedFormatError occurs when File is given a file whose
// extension does not name a known document format.
type UnsupportedFormatError struct {
	Path string
}

// Error implements the error interface.
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported config file format: %s", e.Path)
}

type fileOptions struct {
	render []RenderTextTemplateOption
	tmpl   bool
}

// FileOption configures File.
type FileOption func(*fileOptions)

// WithTextTemplate renders the file as a text/template before it is
// decoded. The options are passed to RenderTextTemplate.
func WithTextTemplate(opts ...RenderTextTemplateOption) FileOption {
	return func(fo *fileOptions) {
		fo.tmpl = true
		fo.render = append(fo.render, opts...)
	}
}

// File reads a YAML (.yaml, .yml) or JSON (.json) document from fsys.
func File(fsys fs.FS, name string, opts ...FileOption) (Map, error) {
	fo := &fileOptions{}
	for _, opt := range opts {
		opt(fo)
	}

	var decode func(io.Reader) (Map, error)
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		decode = FromYaml
	case ".json":
		decode = FromJson
	default:
		return nil, UnsupportedFormatError{Path: name}
	}

	var r io.Reader = NewFileReader(fsys, name)
	if fo.tmpl {
		r = RenderTextTemplate(r, fo.render...)
	}
	return decode(r)
}
