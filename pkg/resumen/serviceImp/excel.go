package serviceImp

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var encabezados = []string{"Semana Año", "Día", "Módulo", "Agua", "Comida"}

func (s *service) ExportarExcel(year, week int) ([]byte, error) {
	filas, err := s.filas(year, week)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Semana %d", week)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	estilo, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range encabezados {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "E1", estilo); err != nil {
		return nil, err
	}

	for i, fila := range filas {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), fila.Semana)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), fila.Dia)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fila.Modulo)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), marca(fila.Agua))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), marca(fila.Comida))
	}

	// fixed widths, not content-driven
	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 18)
	f.SetColWidth(sheet, "C", "E", 10)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marca(b bool) string {
	if b {
		return "✓"
	}
	return "✗"
}
