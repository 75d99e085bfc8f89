package render

import (
	"bytes"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fossabot/parse-function/jsextract"
)

type plainRecord struct {
	File   string   `json:"file" yaml:"file"`
	Line   int      `json:"line" yaml:"line"`
	Kind   string   `json:"kind" yaml:"kind"`
	Name   string   `json:"name" yaml:"name"`
	Params string   `json:"params" yaml:"params"`
	Args   []string `json:"args" yaml:"args"`
	Body   string   `json:"body" yaml:"body"`
}

func sampleRecords() []Record {
	return []Record{
		FromSource("function testing (a, b, callback) { callback(null, a + b) }"),
		FromFunc(jsextract.Func{Kind: jsextract.KindArrow, Text: "x => x * 2", File: "a.js", Line: 3}),
	}
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, "json", sampleRecords()))

	var got []plainRecord
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, plainRecord{
		Name: "testing", Params: "a, b, callback", Args: []string{"a", "b", "callback"},
		Body: " callback(null, a + b) ",
	}, got[0])
	assert.Equal(t, plainRecord{
		File: "a.js", Line: 3, Kind: "arrow",
		Name: "anonymous", Params: "x", Args: []string{"x"}, Body: "x * 2",
	}, got[1])

	assert.NotContains(t, buf.String(), "orig")
	assert.NotContains(t, buf.String(), `"file": ""`)
}

func TestWriteYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, "yaml", sampleRecords()))

	var got []plainRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "testing", got[0].Name)
	assert.Equal(t, []string{"a", "b", "callback"}, got[0].Args)
	assert.Equal(t, "a.js", got[1].File)
	assert.Equal(t, "x * 2", got[1].Body)
}

func TestWriteEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, "json", nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, "toml", sampleRecords()))
}
