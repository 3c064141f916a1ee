package repo

import (
	"errors"

	"gorm.io/gorm"

	"beer-market/internal/domain"
)

type OfferRepo struct{ db *gorm.DB }

func NewOfferRepo(db *gorm.DB) *OfferRepo { return &OfferRepo{db: db} }

func (r *OfferRepo) Create(o *domain.Offer) error { return r.db.Create(o).Error }

func (r *OfferRepo) FindByID(id string) (*domain.Offer, error) {
	var o domain.Offer
	err := r.db.First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

func (r *OfferRepo) List() ([]domain.Offer, error) {
	var offers []domain.Offer
	err := r.db.Order("created_at").Find(&offers).Error
	return offers, err
}

func (r *OfferRepo) ListByType(t domain.TxType) ([]domain.Offer, error) {
	var offers []domain.Offer
	err := r.db.Where("type = ?", t).Order("created_at").Find(&offers).Error
	return offers, err
}

func (r *OfferRepo) ListByOwner(userID string) ([]domain.Offer, error) {
	var offers []domain.Offer
	err := r.db.Where("owner_id = ?", userID).Order("created_at").Find(&offers).Error
	return offers, err
}

func (r *OfferRepo) Update(o *domain.Offer) error { return r.db.Save(o).Error }

func (r *OfferRepo) Delete(id string) error {
	return r.db.Delete(&domain.Offer{}, "id = ?", id).Error
}
