package iojson

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileReader_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"a","count":2}`), 0o644))

	var fr FileReader[doc]
	fr.SetFile(path)

	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, doc{Name: "a", Count: 2}, got)
}

func TestFileReader_ReadsStdin(t *testing.T) {
	fr := FileReader[doc]{Stdin: strings.NewReader(`{"name":"b"}`)}

	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, "b", got.Name)
}

func TestFileReader_Errors(t *testing.T) {
	var missing FileReader[doc]
	missing.SetFile(filepath.Join(t.TempDir(), "missing.json"))
	_, err := missing.Read()
	require.ErrorContains(t, err, "open file")

	bad := FileReader[doc]{Stdin: strings.NewReader(`{`)}
	_, err = bad.Read()
	require.ErrorContains(t, err, "decode JSON")
}

func TestFileReader_Flag(t *testing.T) {
	var fr FileReader[doc]
	f := fr.Flag()

	assert.Equal(t, "file", f.Name)
	assert.Equal(t, []string{"f"}, f.Aliases)
}
