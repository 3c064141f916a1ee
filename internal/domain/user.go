package domain

import (
	"time"

	"beer-market/pkg/utils"
)

type User struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Username    string    `gorm:"size:64" json:"username"`
	Name        string    `gorm:"size:64" json:"name"`
	Surname     string    `gorm:"size:64" json:"surname"`
	Email       string    `gorm:"size:191" json:"email"`
	PhoneNumber string    `gorm:"size:32" json:"phoneNumber"`
	LocationX   float64   `json:"-"`
	LocationY   float64   `json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func NewUser() *User {
	return &User{
		ID:        utils.NewID(),
		LocationX: CampusX,
		LocationY: CampusY,
	}
}

func (u *User) SetLocation(x, y float64) {
	u.LocationX = x
	u.LocationY = y
}

type UserView struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Surname     string   `json:"surname"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phoneNumber"`
	Location    Location `json:"location"`
}

// View 固定形状的序列化投影
func (u *User) View() UserView {
	return UserView{
		ID:          u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Surname:     u.Surname,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Location:    Location{X: u.LocationX, Y: u.LocationY},
	}
}
