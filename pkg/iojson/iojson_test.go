package iojson

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]int{"total": 2})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"total\": 2\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, make(chan int))
	require.Error(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), `"json_error"`)
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteLine(&out, map[string]string{"id": "a"}))
	require.NoError(t, WriteLine(&out, map[string]string{"id": "b"}))
	assert.Equal(t, "{\"id\":\"a\"}\n{\"id\":\"b\"}\n", out.String())
}

func TestMarshalError(t *testing.T) {
	got := MarshalError("bad input", map[string]any{"line": 3})
	assert.JSONEq(t, `{"message":"bad input","data":{"line":3}}`, got)

	got = MarshalError("no data", nil)
	assert.JSONEq(t, `{"message":"no data"}`, got)
}

func TestWriteError(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteError(&out, "bad flag", map[string]any{"flag": "priority"}))
	assert.JSONEq(t, `{"message":"bad flag","data":{"flag":"priority"}}`, out.String())
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
}

func TestFileReader(t *testing.T) {
	type item struct {
		Title string `json:"title"`
	}

	t.Run("from reader", func(t *testing.T) {
		fr := NewFileReader[[]item](strings.NewReader(`[{"title":"a"}]`))
		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, []item{{Title: "a"}}, got)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"title":"b"}]`), 0o644))

		fr := NewFileReader[[]item](strings.NewReader("ignored"))
		fr.SetFile(path)
		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, []item{{Title: "b"}}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		fr := &FileReader[[]item]{}
		fr.SetFile(filepath.Join(t.TempDir(), "missing.json"))
		_, err := fr.Read()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open file")
	})

	t.Run("bad json", func(t *testing.T) {
		fr := NewFileReader[[]item](strings.NewReader(`{`))
		_, err := fr.Read()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode JSON")
	})
}
