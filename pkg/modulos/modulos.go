package modulos

import (
	"encoding/csv"
	"errors"
	"io"
	"log"
	"os"
	"sort"
	"strings"
)

// PorDefecto is the fallback catalogue when no CSV can be read.
var PorDefecto = []string{"11", "12", "13", "14", "15", "16", "21", "22", "23", "24"}

// Cargar reads the módulo catalogue from a CSV with a `modulo` header column.
// Any read or format problem falls back to the default list. Result is sorted.
func Cargar(path string) []string {
	out, err := cargarCSV(path)
	if err != nil {
		log.Printf("[modulos] error cargando %s: %v (usando lista por defecto)", path, err)
		out = append([]string(nil), PorDefecto...)
	}
	sort.Strings(out)
	return out
}

func cargarCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil {
		return nil, err
	}

	col := -1
	for i, h := range head {
		h = strings.TrimPrefix(strings.TrimSpace(h), "\uFEFF") // BOM
		if strings.EqualFold(h, "modulo") {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, errors.New("columna modulo no encontrada")
	}

	var out []string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if col >= len(rec) {
			continue
		}
		if m := strings.TrimSpace(rec[col]); m != "" {
			out = append(out, m)
		}
	}
	return out, nil
}
