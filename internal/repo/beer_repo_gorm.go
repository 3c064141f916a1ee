package repo

import (
	"errors"

	"gorm.io/gorm"

	"beer-market/internal/domain"
)

type BeerRepo struct{ db *gorm.DB }

func NewBeerRepo(db *gorm.DB) *BeerRepo { return &BeerRepo{db: db} }

func (r *BeerRepo) Create(b *domain.Beer) error { return r.db.Create(b).Error }

func (r *BeerRepo) FindByID(id string) (*domain.Beer, error) {
	var b domain.Beer
	err := r.db.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *BeerRepo) List() ([]domain.Beer, error) {
	var beers []domain.Beer
	err := r.db.Order("created_at").Find(&beers).Error
	return beers, err
}
