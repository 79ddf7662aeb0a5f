package entities

// Riego is one irrigation/fertilization event for one módulo on one day.
// Fecha is the reporting day (authoritative for bucketing); Timestamp is the
// moment of capture and is kept as the ISO-8601 text the client stored, which
// may be offset-qualified or naive (naive means UTC).
type Riego struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Fecha     string `gorm:"index" json:"fecha"` // YYYY-MM-DD
	Modulo    string `json:"modulo"`
	TipoRiego string `json:"tipo_riego"` // agua|comida
	Timestamp string `json:"timestamp"`
}
