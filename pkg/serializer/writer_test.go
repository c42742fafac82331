// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type region struct {
	Name   string `json:"name" yaml:"name"`
	Domain int    `json:"faultDomains" yaml:"faultDomains"`
}

type report struct {
	Kind    string   `json:"kind" yaml:"kind"`
	Regions []region `json:"regions" yaml:"regions"`
	Skipped []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

func sampleReport() report {
	return report{
		Kind: "LocationList",
		Regions: []region{
			{Name: "eastus", Domain: 3},
			{Name: "westus", Domain: 2},
		},
	}
}

func TestWriter_Formats(t *testing.T) {
	tests := []struct {
		format   Format
		contains []string
	}{
		{FormatJSON, []string{`"kind": "LocationList"`, `"faultDomains": 3`}},
		{FormatYAML, []string{"kind: LocationList", "- name: eastus", "faultDomains: 2"}},
		{FormatTable, []string{"FIELD", "regions.[0000].name", "eastus", "regions.[0001].faultDomains"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(tt.format, &buf)
			require.NoError(t, w.Serialize(context.Background(), sampleReport()))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	require.NoError(t, w.Serialize(context.Background(), map[string]int{"a": 1}))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestWriter_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	require.NoError(t, w.Serialize(context.Background(), struct{}{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestWriter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := NewWriter(FormatJSON, &buf).Serialize(ctx, sampleReport())
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestFileWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.yaml")

	w := NewFileWriterOrStdout(FormatYAML, path)
	require.NoError(t, w.Serialize(context.Background(), sampleReport()))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	got, err := FromFile[report](context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, sampleReport(), *got)
}

func TestNewFileWriterOrStdout_Dash(t *testing.T) {
	w := NewFileWriterOrStdout(FormatJSON, "-")
	assert.Equal(t, os.Stdout, w.output)
	assert.NoError(t, w.Close())
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"snap.json":    FormatJSON,
		"SNAP.YAML":    FormatYAML,
		"snap.yml":     FormatYAML,
		"report.txt":   FormatTable,
		"report.bin":   FormatJSON,
		"no-extension": FormatJSON,
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, want, FormatFromPath(path))
		})
	}
}

func TestNewReader_Rejects(t *testing.T) {
	_, err := NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewReader(Format("toml"), strings.NewReader(""))
	assert.Error(t, err)
}

func TestReader_Deserialize(t *testing.T) {
	r, err := NewReader(FormatJSON, strings.NewReader(`{"kind":"SkuList","regions":[{"name":"eastus","faultDomains":3}]}`))
	require.NoError(t, err)
	defer r.Close()

	var got report
	require.NoError(t, r.Deserialize(&got))
	assert.Equal(t, "SkuList", got.Kind)
	require.Len(t, got.Regions, 1)
	assert.Equal(t, 3, got.Regions[0].Domain)
}

func TestReader_DeserializeInvalid(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader("kind: [unterminated"))
	require.NoError(t, err)
	var got report
	assert.Error(t, r.Deserialize(&got))
}

func TestReader_NilSafe(t *testing.T) {
	var r *Reader
	assert.NoError(t, r.Close())
	assert.Error(t, r.Deserialize(&report{}))
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile[report](context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
