package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riegos/entities"
	"riegos/pkg/riego/repository"
)

// fakeRepo only implements the range listing the summary uses; everything
// else is unused here.
type fakeRepo struct {
	rows      []entities.Riego
	err       error
	lastDesde string
	lastHasta string
}

func (f *fakeRepo) InsertMany([]entities.Riego) error            { panic("unused") }
func (f *fakeRepo) ListByFecha(string) ([]entities.Riego, error) { panic("unused") }
func (f *fakeRepo) ListAll(int) ([]entities.Riego, error)        { panic("unused") }
func (f *fakeRepo) Update(uint, string, string) error            { panic("unused") }
func (f *fakeRepo) Delete(uint) error                            { panic("unused") }
func (f *fakeRepo) Count(string) (int64, error)                  { panic("unused") }

func (f *fakeRepo) ListByRango(desde, hasta string) ([]entities.Riego, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastDesde, f.lastHasta = desde, hasta
	var out []entities.Riego
	for _, r := range f.rows {
		if r.Fecha >= desde && r.Fecha <= hasta {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestSemanal_FoldsKindsIntoOneRow(t *testing.T) {
	repo := &fakeRepo{rows: []entities.Riego{
		{Fecha: "2025-01-01", Modulo: "11", TipoRiego: "agua"},
		{Fecha: "2025-01-01", Modulo: "11", TipoRiego: "comida"},
		{Fecha: "2025-01-01", Modulo: "11", TipoRiego: "agua"}, // duplicate, same flag
	}}
	s := New(repo)

	out, err := s.Semanal(2025, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-01", out.Semana)
	require.Len(t, out.Datos, 1, "one row per (fecha, módulo), not per event")

	fila := out.Datos[0]
	assert.True(t, fila.Agua)
	assert.True(t, fila.Comida)
	assert.Equal(t, "Miércoles 01/01", fila.Dia)
	assert.Equal(t, "202501", fila.Semana)
	assert.Equal(t, "11", fila.Modulo)
}

func TestSemanal_QueriesTheWeekWindow(t *testing.T) {
	repo := &fakeRepo{rows: []entities.Riego{
		{Fecha: "2025-01-06", Modulo: "11", TipoRiego: "agua"}, // week 2, filtered out
	}}
	s := New(repo)

	out, err := s.Semanal(2025, 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-30", repo.lastDesde)
	assert.Equal(t, "2025-01-05", repo.lastHasta)
	assert.Empty(t, out.Datos)
}

func TestSemanal_SortedByFechaThenModulo(t *testing.T) {
	repo := &fakeRepo{rows: []entities.Riego{
		{Fecha: "2025-01-02", Modulo: "21", TipoRiego: "agua"},
		{Fecha: "2025-01-01", Modulo: "12", TipoRiego: "comida"},
		{Fecha: "2025-01-02", Modulo: "11", TipoRiego: "agua"},
		{Fecha: "2025-01-01", Modulo: "11", TipoRiego: "agua"},
	}}
	s := New(repo)

	out, err := s.Semanal(2025, 1)
	require.NoError(t, err)
	require.Len(t, out.Datos, 4)

	var claves []string
	for _, f := range out.Datos {
		claves = append(claves, f.Fecha+"|"+f.Modulo)
	}
	assert.Equal(t, []string{
		"2025-01-01|11",
		"2025-01-01|12",
		"2025-01-02|11",
		"2025-01-02|21",
	}, claves)
}

func TestSemanal_Idempotent(t *testing.T) {
	repo := &fakeRepo{rows: []entities.Riego{
		{Fecha: "2025-01-02", Modulo: "21", TipoRiego: "agua"},
		{Fecha: "2025-01-01", Modulo: "12", TipoRiego: "comida"},
		{Fecha: "2025-01-01", Modulo: "11", TipoRiego: "agua"},
	}}
	s := New(repo)

	a, err := s.Semanal(2025, 1)
	require.NoError(t, err)
	b, err := s.Semanal(2025, 1)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same event set must yield identical output including order")
}

func TestSemanal_NoStoreDegradesToEmpty(t *testing.T) {
	s := New(&fakeRepo{err: repository.ErrSinBase})

	out, err := s.Semanal(2025, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-01", out.Semana)
	assert.NotNil(t, out.Datos)
	assert.Empty(t, out.Datos)
}
