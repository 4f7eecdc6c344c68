// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides functions to open and save
// settings structs as YAML.
package yamlx

import (
	"io"
	"os"

	"cogentcore.org/tint/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new [iox.Decoder]
func NewDecoder(r io.Reader) iox.Decoder { return yaml.NewDecoder(r) }

// Open reads the given object from the given filename using YAML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, NewDecoder)
}

// Read reads the given object from the given reader,
// using YAML encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, NewDecoder)
}

// ReadBytes reads the given object from the given bytes,
// using YAML encoding
func ReadBytes(v any, data []byte) error {
	return yaml.Unmarshal(data, v)
}

// NewEncoder returns a new [iox.Encoder]
func NewEncoder(w io.Writer) iox.Encoder {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	return e
}

// Save writes the given object to the given filename using YAML encoding
func Save(v any, filename string) error {
	b, err := WriteBytes(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// Write writes the given object using YAML encoding.
// The encoder is closed so that the whole document is flushed.
func Write(v any, writer io.Writer) error {
	e := yaml.NewEncoder(writer)
	e.SetIndent(2)
	if err := e.Encode(v); err != nil {
		return err
	}
	return e.Close()
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using YAML encoding
func WriteBytes(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
