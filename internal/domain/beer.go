package domain

import (
	"strings"
	"time"
)

type Packing string

const (
	PackingCan    Packing = "can"
	PackingBottle Packing = "bottle"
)

// ParsePacking 大小写不敏感
func ParsePacking(s string) (Packing, bool) {
	switch Packing(strings.ToLower(s)) {
	case PackingCan:
		return PackingCan, true
	case PackingBottle:
		return PackingBottle, true
	}
	return "", false
}

type Beer struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Brand     string    `gorm:"size:128" json:"brand"`
	Name      string    `gorm:"size:128" json:"name"`
	Volume    float64   `json:"volume"`
	Alcohol   float64   `json:"alcohol"`
	Packing   Packing   `gorm:"size:16" json:"packing"`
	CreatedAt time.Time `json:"-"`
}

type BeerView struct {
	ID      string  `json:"id"`
	Brand   string  `json:"brand"`
	Name    string  `json:"name"`
	Volume  float64 `json:"volume"`
	Alcohol float64 `json:"alcohol"`
	Packing Packing `json:"packing"`
}

func (b *Beer) View() BeerView {
	return BeerView{
		ID:      b.ID,
		Brand:   b.Brand,
		Name:    b.Name,
		Volume:  b.Volume,
		Alcohol: b.Alcohol,
		Packing: b.Packing,
	}
}
