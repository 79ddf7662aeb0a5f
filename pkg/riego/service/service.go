package service

import "errors"

// Validation errors, user-correctable. Messages double as the API error body.
var (
	ErrSinModulos       = errors.New("Debe seleccionar al menos un módulo")
	ErrSinTipos         = errors.New("Debe seleccionar al menos un tipo de riego")
	ErrDatosIncompletos = errors.New("Datos incompletos")
)

// RegistroView is the display projection of one event for the daily list.
type RegistroView struct {
	ID        uint   `json:"id"`
	Hora      string `json:"hora"`
	Modulo    string `json:"modulo"`
	TipoRiego string `json:"tipo_riego"` // display label, not the enum value
	Fecha     string `json:"fecha"`
}

// HistorialView is one row of the full history list.
type HistorialView struct {
	Fecha     string `json:"fecha"` // DD/MM/YYYY
	Hora      string `json:"hora"`
	Modulo    string `json:"modulo"`
	TipoRiego string `json:"tipo_riego"`
}

type RegistroResult struct {
	Message   string
	Registros int
}

type Estadisticas struct {
	RegistrosHoy   int64 `json:"registros_hoy"`
	TotalRegistros int64 `json:"total_registros"`
}

type RiegoService interface {
	// Registrar expands modulos × tipos into one event per pair, all sharing
	// fecha (today's Ecuador date when empty) and one capture timestamp.
	Registrar(modulos, tipos []string, fecha string) (RegistroResult, error)
	PorFecha(fecha string) ([]RegistroView, error)
	Historial() ([]HistorialView, error)
	Editar(id uint, modulo, tipoRiego string) error
	Eliminar(id uint) error
	Estadisticas() (Estadisticas, error)
}

// Etiqueta maps the stored enum value to its display label.
func Etiqueta(tipoRiego string) string {
	if tipoRiego == "agua" {
		return "Agua"
	}
	return "Comida (Fertilizante)"
}
