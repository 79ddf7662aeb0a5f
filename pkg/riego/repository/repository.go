package repository

import (
	"errors"

	"riegos/entities"
)

// ErrSinBase reports that no backing database is configured. Callers surface
// it as an operator problem, distinct from validation failures.
var ErrSinBase = errors.New("base de datos no configurada")

type RiegoRepository interface {
	InsertMany(rs []entities.Riego) error
	ListByFecha(fecha string) ([]entities.Riego, error)
	ListAll(limit int) ([]entities.Riego, error)
	ListByRango(desde, hasta string) ([]entities.Riego, error)
	Update(id uint, modulo, tipoRiego string) error
	Delete(id uint) error
	Count(fecha string) (int64, error)
}
