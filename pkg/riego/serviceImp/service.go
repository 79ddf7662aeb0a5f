package serviceImp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"riegos/entities"
	"riegos/pkg/fechas"
	"riegos/pkg/riego/repository"
	svc "riegos/pkg/riego/service"
)

// historialLimit caps the full-history listing store-wide.
const historialLimit = 500

type service struct{ repo repository.RiegoRepository }

func New(r repository.RiegoRepository) svc.RiegoService { return &service{repo: r} }

func (s *service) Registrar(modulos, tipos []string, fecha string) (svc.RegistroResult, error) {
	if len(modulos) == 0 {
		return svc.RegistroResult{}, svc.ErrSinModulos
	}
	if len(tipos) == 0 {
		return svc.RegistroResult{}, svc.ErrSinTipos
	}
	if fecha == "" {
		fecha = fechas.Hoy()
	}
	// one capture timestamp for the whole request
	ts := fechas.Ahora()

	registros := make([]entities.Riego, 0, len(modulos)*len(tipos))
	for _, m := range modulos {
		for _, t := range tipos {
			registros = append(registros, entities.Riego{
				Fecha:     fecha,
				Modulo:    m,
				TipoRiego: t,
				Timestamp: ts,
			})
		}
	}

	if err := s.repo.InsertMany(registros); err != nil {
		return svc.RegistroResult{}, err
	}

	etiquetas := make([]string, 0, len(tipos))
	for _, t := range tipos {
		if t == "agua" {
			etiquetas = append(etiquetas, "Agua")
		} else {
			etiquetas = append(etiquetas, "Comida")
		}
	}
	return svc.RegistroResult{
		Message:   fmt.Sprintf("Riego registrado: %d módulo(s) con %s", len(modulos), strings.Join(etiquetas, " y ")),
		Registros: len(registros),
	}, nil
}

func (s *service) PorFecha(fecha string) ([]svc.RegistroView, error) {
	if fecha == "" {
		fecha = fechas.Hoy()
	}
	regs, err := s.repo.ListByFecha(fecha)
	if err != nil {
		if errors.Is(err, repository.ErrSinBase) {
			return []svc.RegistroView{}, nil
		}
		return nil, err
	}
	out := make([]svc.RegistroView, 0, len(regs))
	for _, r := range regs {
		out = append(out, svc.RegistroView{
			ID:        r.ID,
			Hora:      fechas.HoraLocal(r.Timestamp),
			Modulo:    r.Modulo,
			TipoRiego: svc.Etiqueta(r.TipoRiego),
			Fecha:     r.Fecha,
		})
	}
	return out, nil
}

func (s *service) Historial() ([]svc.HistorialView, error) {
	regs, err := s.repo.ListAll(historialLimit)
	if err != nil {
		if errors.Is(err, repository.ErrSinBase) {
			return []svc.HistorialView{}, nil
		}
		return nil, err
	}
	out := make([]svc.HistorialView, 0, len(regs))
	for _, r := range regs {
		// lenient render: unparseable values pass through raw
		fecha := r.Fecha
		if d, err := time.Parse("2006-01-02", r.Fecha); err == nil {
			fecha = d.Format("02/01/2006")
		}
		out = append(out, svc.HistorialView{
			Fecha:     fecha,
			Hora:      fechas.Hora(r.Timestamp),
			Modulo:    r.Modulo,
			TipoRiego: svc.Etiqueta(r.TipoRiego),
		})
	}
	return out, nil
}

func (s *service) Editar(id uint, modulo, tipoRiego string) error {
	if modulo == "" || tipoRiego == "" {
		return svc.ErrDatosIncompletos
	}
	return s.repo.Update(id, modulo, tipoRiego)
}

func (s *service) Eliminar(id uint) error {
	return s.repo.Delete(id)
}

func (s *service) Estadisticas() (svc.Estadisticas, error) {
	hoy, err := s.repo.Count(fechas.Hoy())
	if err != nil {
		if errors.Is(err, repository.ErrSinBase) {
			return svc.Estadisticas{}, nil
		}
		return svc.Estadisticas{}, err
	}
	total, err := s.repo.Count("")
	if err != nil {
		return svc.Estadisticas{}, err
	}
	return svc.Estadisticas{RegistrosHoy: hoy, TotalRegistros: total}, nil
}
