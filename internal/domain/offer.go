package domain

import (
	"strings"
	"time"

	"beer-market/internal/geo"
	"beer-market/pkg/utils"
)

type TxType string

const (
	TxBuy  TxType = "buy"
	TxSell TxType = "sell"
)

// ParseTxType 大小写不敏感
func ParseTxType(s string) (TxType, bool) {
	switch TxType(strings.ToLower(s)) {
	case TxBuy:
		return TxBuy, true
	case TxSell:
		return TxSell, true
	}
	return "", false
}

type Offer struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   string    `gorm:"size:36;not null;index" json:"owner"`
	BeerID    string    `gorm:"size:36;not null;index" json:"beer"`
	Amount    int       `json:"amount"`
	Price     float64   `json:"price"`
	LocationX float64   `json:"-"`
	LocationY float64   `json:"-"`
	Type      TxType    `gorm:"size:8;index" json:"type"` // 创建后不可变
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func NewOffer() *Offer {
	return &Offer{
		ID:        utils.NewID(),
		Amount:    1,
		LocationX: CampusX,
		LocationY: CampusY,
		Type:      TxSell,
	}
}

func (o *Offer) SetLocation(x, y float64) {
	o.LocationX = x
	o.LocationY = y
}

func (o *Offer) IsSelling() bool { return o.Type == TxSell }
func (o *Offer) IsBuying() bool  { return o.Type == TxBuy }

// DistanceTo 报价位置到给定坐标的距离（km）
func (o *Offer) DistanceTo(x, y float64) float64 {
	return geo.Distance(o.LocationX, o.LocationY, x, y)
}

type OfferView struct {
	ID       string   `json:"id"`
	Owner    string   `json:"owner"`
	Beer     string   `json:"beer"`
	Amount   int      `json:"amount"`
	Price    float64  `json:"price"`
	Location Location `json:"location"`
	Type     TxType   `json:"type"`
}

func (o *Offer) View() OfferView {
	return OfferView{
		ID:       o.ID,
		Owner:    o.OwnerID,
		Beer:     o.BeerID,
		Amount:   o.Amount,
		Price:    o.Price,
		Location: Location{X: o.LocationX, Y: o.LocationY},
		Type:     o.Type,
	}
}
