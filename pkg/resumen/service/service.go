package service

// Fila is one weekly-summary row: one (fecha, módulo) pair with a flag per
// irrigation kind seen that day. Derived only, never persisted.
type Fila struct {
	Fecha  string `json:"fecha"` // YYYY-MM-DD
	Dia    string `json:"dia"`   // "Lunes 02/01"
	Modulo string `json:"modulo"`
	Agua   bool   `json:"agua"`
	Comida bool   `json:"comida"`
	Semana string `json:"semana"` // YYYYWW
}

type Resumen struct {
	Semana string `json:"semana"` // YYYY-WW
	Datos  []Fila `json:"datos"`
}

type ResumenService interface {
	Semanal(year, week int) (Resumen, error)
	// ExportarExcel renders the same summary as a styled workbook. Unlike
	// Semanal it does not degrade when no database is configured.
	ExportarExcel(year, week int) ([]byte, error)
}
