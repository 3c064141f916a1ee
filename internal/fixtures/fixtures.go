package fixtures

import (
	"gorm.io/gorm"

	"beer-market/internal/domain"
)

const (
	DemoUserID = "00000000-0000-0000-0000-000000000001"
	DemoBeerID = "00000000-0000-0000-0000-000000000001"
)

// Load 幂等灌入演示数据
func Load(db *gorm.DB) error {
	user := domain.NewUser()
	user.ID = DemoUserID
	user.Username = "kustosz enjoyer"
	user.Name = "Jan"
	user.Surname = "Kowalski"
	user.Email = "jkowalski@example.com"
	user.PhoneNumber = "123123123"
	if err := db.Where("id = ?", user.ID).FirstOrCreate(user).Error; err != nil {
		return err
	}

	beer := &domain.Beer{
		ID:      DemoBeerID,
		Brand:   "Żywiec",
		Name:    "Żywiec Jasne Pełne",
		Volume:  500,
		Alcohol: 5.6,
		Packing: domain.PackingBottle,
	}
	return db.Where("id = ?", beer.ID).FirstOrCreate(beer).Error
}
