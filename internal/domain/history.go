package domain

import (
	"time"

	"beer-market/pkg/utils"
)

// History 成交记录；关联的报价被删除后 OfferID 置空，但记录本身保留
type History struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OfferID   *string   `gorm:"size:36;index" json:"offer"`
	BuyerID   string    `gorm:"size:36;index" json:"buyer"`
	SellerID  string    `gorm:"size:36;index" json:"seller"`
	Amount    int       `json:"amount"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewHistory(offerID *string, buyerID, sellerID string, amount int, price float64) *History {
	return &History{
		ID:       utils.NewID(),
		OfferID:  offerID,
		BuyerID:  buyerID,
		SellerID: sellerID,
		Amount:   amount,
		Price:    price,
	}
}

type HistoryView struct {
	ID        string    `json:"id"`
	Offer     *string   `json:"offer"`
	Buyer     string    `json:"buyer"`
	Seller    string    `json:"seller"`
	Amount    int       `json:"amount"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *History) View() HistoryView {
	return HistoryView{
		ID:        h.ID,
		Offer:     h.OfferID,
		Buyer:     h.BuyerID,
		Seller:    h.SellerID,
		Amount:    h.Amount,
		Price:     h.Price,
		CreatedAt: h.CreatedAt,
	}
}
