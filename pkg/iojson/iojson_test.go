package iojson

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith_Indented(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, doc{Name: "a", Count: 1}))

	assert.Equal(t, "{\n  \"name\": \"a\",\n  \"count\": 1\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalError(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"bad": make(chan int)})

	require.Error(t, err)
	assert.Empty(t, out.String())
	var doc failureDocument
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &doc))
	assert.Equal(t, "cannot encode output", doc.Message)
	assert.Contains(t, doc.Cause, "chan int")
}
