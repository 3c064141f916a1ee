package repo

import (
	"gorm.io/gorm"

	"beer-market/internal/domain"
)

type HistoryRepo struct{ db *gorm.DB }

func NewHistoryRepo(db *gorm.DB) *HistoryRepo { return &HistoryRepo{db: db} }

func (r *HistoryRepo) Create(h *domain.History) error { return r.db.Create(h).Error }

func (r *HistoryRepo) ListByUser(userID string) ([]domain.History, error) {
	var hs []domain.History
	err := r.db.Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("created_at desc").Find(&hs).Error
	return hs, err
}

func (r *HistoryRepo) ListByOffer(offerID string) ([]domain.History, error) {
	var hs []domain.History
	err := r.db.Where("offer_id = ?", offerID).Order("created_at desc").Find(&hs).Error
	return hs, err
}

// DetachOffer 报价删除时把关联成交记录的外键置空（孤儿化，不删记录）
func (r *HistoryRepo) DetachOffer(offerID string) error {
	return r.db.Model(&domain.History{}).
		Where("offer_id = ?", offerID).
		Update("offer_id", nil).Error
}
