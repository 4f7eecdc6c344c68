// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Source   string  `yaml:"source"`
	Dark     bool    `yaml:"dark"`
	Contrast float64 `yaml:"contrast"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "settings.yaml")
	in := &testSettings{Source: "#6750a4", Dark: true, Contrast: 0.5}
	require.NoError(t, Save(in, fn))

	out := &testSettings{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)
}

func TestReadWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&testSettings{Source: "#123456"}, &buf))
	assert.Contains(t, buf.String(), "source: ")

	out := &testSettings{}
	require.NoError(t, Read(out, &buf))
	assert.Equal(t, "#123456", out.Source)

	require.NoError(t, ReadBytes(out, []byte("dark: true\ncontrast: -1\n")))
	assert.True(t, out.Dark)
	assert.Equal(t, -1.0, out.Contrast)
}
