package repositoryImp

import (
	"gorm.io/gorm"

	"riegos/entities"
	"riegos/pkg/riego/repository"
)

type sqliteRepo struct{ db *gorm.DB }

// New builds the riegos repository. db may be nil when no database is
// configured; every operation then fails with ErrSinBase instead of
// panicking, so the app can still come up and report the condition.
func New(db *gorm.DB) repository.RiegoRepository { return &sqliteRepo{db: db} }

func (r *sqliteRepo) InsertMany(rs []entities.Riego) error {
	if r.db == nil {
		return repository.ErrSinBase
	}
	return r.db.Create(&rs).Error
}

func (r *sqliteRepo) ListByFecha(fecha string) ([]entities.Riego, error) {
	if r.db == nil {
		return nil, repository.ErrSinBase
	}
	var out []entities.Riego
	err := r.db.Where("fecha = ?", fecha).Order("timestamp desc").Find(&out).Error
	return out, err
}

func (r *sqliteRepo) ListAll(limit int) ([]entities.Riego, error) {
	if r.db == nil {
		return nil, repository.ErrSinBase
	}
	var out []entities.Riego
	err := r.db.Order("timestamp desc").Limit(limit).Find(&out).Error
	return out, err
}

func (r *sqliteRepo) ListByRango(desde, hasta string) ([]entities.Riego, error) {
	if r.db == nil {
		return nil, repository.ErrSinBase
	}
	var out []entities.Riego
	err := r.db.Where("fecha >= ? AND fecha <= ?", desde, hasta).Find(&out).Error
	return out, err
}

// Update replaces the mutable fields of one row. A missing id is not an
// error: the UPDATE simply matches nothing.
func (r *sqliteRepo) Update(id uint, modulo, tipoRiego string) error {
	if r.db == nil {
		return repository.ErrSinBase
	}
	return r.db.Model(&entities.Riego{}).Where("id = ?", id).
		Updates(map[string]any{"modulo": modulo, "tipo_riego": tipoRiego}).Error
}

// Delete removes one row by id; deleting a missing id is a no-op.
func (r *sqliteRepo) Delete(id uint) error {
	if r.db == nil {
		return repository.ErrSinBase
	}
	return r.db.Delete(&entities.Riego{}, id).Error
}

func (r *sqliteRepo) Count(fecha string) (int64, error) {
	if r.db == nil {
		return 0, repository.ErrSinBase
	}
	q := r.db.Model(&entities.Riego{})
	if fecha != "" {
		q = q.Where("fecha = ?", fecha)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}
