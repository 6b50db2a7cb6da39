package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []string{"Fecha", "Comentarios"}, [][]string{
		{"2024-01-15", "llegó tarde; con permiso"},
		{"2024-01-16", ""},
	})
	require.NoError(t, err)

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, utf8BOM))

	lines := strings.Split(strings.TrimSuffix(string(out[len(utf8BOM):]), "\n"), "\n")
	assert.Equal(t, []string{
		"sep=;",
		"Fecha;Comentarios",
		`2024-01-15;"llegó tarde; con permiso"`,
		"2024-01-16;",
	}, lines)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := WriteXLSX(&buf, "Reportes", []string{"Fecha", "Horas"}, [][]interface{}{
		{"2024-01-15", 8.5},
		{"2024-01-16", 0},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reportes")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Fecha", "Horas"}, rows[0])
	assert.Equal(t, []string{"2024-01-15", "8.5"}, rows[1])
	assert.Equal(t, []string{"2024-01-16", "0"}, rows[2])
}
