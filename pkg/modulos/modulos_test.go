package modulos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modulos.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCargar(t *testing.T) {
	path := writeCSV(t, "modulo\n22\n11\n14\n")
	assert.Equal(t, []string{"11", "14", "22"}, Cargar(path), "sorted")
}

func TestCargar_ExtraColumnsAndBOM(t *testing.T) {
	path := writeCSV(t, "\uFEFFmodulo,nombre\n12,Norte\n11,Sur\n")
	assert.Equal(t, []string{"11", "12"}, Cargar(path))
}

func TestCargar_MissingFileFallsBack(t *testing.T) {
	got := Cargar(filepath.Join(t.TempDir(), "no-existe.csv"))
	assert.Equal(t, PorDefecto, got, "default list is already sorted")
}

func TestCargar_MissingColumnFallsBack(t *testing.T) {
	path := writeCSV(t, "bloque\nA\nB\n")
	assert.Equal(t, PorDefecto, Cargar(path))
}
