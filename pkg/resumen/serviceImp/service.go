package serviceImp

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"riegos/pkg/fechas"
	svc "riegos/pkg/resumen/service"
	"riegos/pkg/riego/repository"
)

type service struct{ repo repository.RiegoRepository }

func New(r repository.RiegoRepository) svc.ResumenService { return &service{repo: r} }

func (s *service) Semanal(year, week int) (svc.Resumen, error) {
	out := svc.Resumen{Semana: fmt.Sprintf("%d-%02d", year, week), Datos: []svc.Fila{}}
	filas, err := s.filas(year, week)
	if err != nil {
		if errors.Is(err, repository.ErrSinBase) {
			// no store: empty summary rather than an error
			return out, nil
		}
		return svc.Resumen{}, err
	}
	out.Datos = filas
	return out, nil
}

// filas fetches the week's events and folds them into one row per
// (fecha, módulo), ascending by that same key.
func (s *service) filas(year, week int) ([]svc.Fila, error) {
	desde, hasta := fechas.RangoSemana(year, week)
	regs, err := s.repo.ListByRango(desde.Format("2006-01-02"), hasta.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	tag := fmt.Sprintf("%d%02d", year, week)
	porClave := map[string]*svc.Fila{}
	for _, r := range regs {
		d, err := time.Parse("2006-01-02", r.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida en registro %d: %w", r.ID, err)
		}
		clave := r.Fecha + "|" + r.Modulo
		f, ok := porClave[clave]
		if !ok {
			f = &svc.Fila{
				Fecha:  r.Fecha,
				Dia:    fmt.Sprintf("%s %s", fechas.NombreDia(d), d.Format("02/01")),
				Modulo: r.Modulo,
				Semana: tag,
			}
			porClave[clave] = f
		}
		switch r.TipoRiego {
		case "agua":
			f.Agua = true
		case "comida":
			f.Comida = true
		}
	}

	filas := make([]svc.Fila, 0, len(porClave))
	for _, f := range porClave {
		filas = append(filas, *f)
	}
	sort.Slice(filas, func(i, j int) bool {
		if filas[i].Fecha != filas[j].Fecha {
			return filas[i].Fecha < filas[j].Fecha
		}
		return filas[i].Modulo < filas[j].Modulo
	})
	return filas, nil
}
