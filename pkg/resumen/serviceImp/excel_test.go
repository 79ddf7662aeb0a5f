package serviceImp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"riegos/entities"
	"riegos/pkg/riego/repository"
)

func TestExportarExcel(t *testing.T) {
	repo := &fakeRepo{rows: []entities.Riego{
		{Fecha: "2025-01-01", Modulo: "11", TipoRiego: "agua"},
		{Fecha: "2025-01-01", Modulo: "11", TipoRiego: "comida"},
		{Fecha: "2025-01-02", Modulo: "12", TipoRiego: "agua"},
	}}
	s := New(repo)

	b, err := s.ExportarExcel(2025, 1)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	sheet := "Semana 1"
	assert.Equal(t, []string{sheet}, f.GetSheetList())

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Semana Año", "Día", "Módulo", "Agua", "Comida"}, rows[0])
	assert.Equal(t, []string{"202501", "Miércoles 01/01", "11", "✓", "✓"}, rows[1])
	assert.Equal(t, []string{"202501", "Jueves 02/01", "12", "✓", "✗"}, rows[2])
}

func TestExportarExcel_NoStoreIsAnError(t *testing.T) {
	s := New(&fakeRepo{err: repository.ErrSinBase})

	_, err := s.ExportarExcel(2025, 1)
	assert.ErrorIs(t, err, repository.ErrSinBase)
}
