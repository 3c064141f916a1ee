package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"beer-market/internal/domain"
	"beer-market/internal/repo"
	"beer-market/internal/transport/http/response"
)

type UserHandler struct {
	users   *repo.UserRepo
	offers  *repo.OfferRepo
	history *repo.HistoryRepo
	log     *zap.Logger
}

func NewUserHandler(db *gorm.DB, l *zap.Logger) *UserHandler {
	return &UserHandler{
		users:   repo.NewUserRepo(db),
		offers:  repo.NewOfferRepo(db),
		history: repo.NewHistoryRepo(db),
		log:     l,
	}
}

func (h *UserHandler) find(c *gin.Context) *domain.User {
	id := c.Param("id")
	user, err := h.users.FindByID(id)
	if err != nil {
		response.ServerError(c, err)
		return nil
	}
	if user == nil {
		response.NotFound(c, "User %s not found", id)
		return nil
	}
	return user
}

// Details GET /user/:id/details
func (h *UserHandler) Details(c *gin.Context) {
	user := h.find(c)
	if user == nil {
		return
	}
	c.JSON(http.StatusOK, user.View())
}

// Offers GET /user/:id/offers
func (h *UserHandler) Offers(c *gin.Context) {
	user := h.find(c)
	if user == nil {
		return
	}
	offers, err := h.offers.ListByOwner(user.ID)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, offerViews(offers))
}

// History GET /user/:id/history
func (h *UserHandler) History(c *gin.Context) {
	user := h.find(c)
	if user == nil {
		return
	}
	entries, err := h.history.ListByUser(user.ID)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	views := make([]domain.HistoryView, 0, len(entries))
	for i := range entries {
		views = append(views, entries[i].View())
	}
	c.JSON(http.StatusOK, views)
}

type userUpdateReq struct {
	Username    *string       `json:"username"`
	Name        *string       `json:"name"`
	Surname     *string       `json:"surname"`
	Email       *string       `json:"email"`
	PhoneNumber *string       `json:"phoneNumber"`
	Location    *locationBody `json:"location"`
}

func (r *userUpdateReq) missing() []string {
	var m []string
	if r.Username == nil {
		m = append(m, "username")
	}
	if r.Name == nil {
		m = append(m, "name")
	}
	if r.Surname == nil {
		m = append(m, "surname")
	}
	if r.Email == nil {
		m = append(m, "email")
	}
	if r.PhoneNumber == nil {
		m = append(m, "phoneNumber")
	}
	if r.Location == nil {
		m = append(m, "location")
	}
	return m
}

// Update PUT /user/:id/update
// 列出的字段整体替换，不支持部分更新
func (h *UserHandler) Update(c *gin.Context) {
	user := h.find(c)
	if user == nil {
		return
	}

	var req userUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if m := req.missing(); len(m) > 0 {
		response.BadRequest(c, missingParamsDetails(m))
		return
	}
	if m := req.Location.missing(); len(m) > 0 {
		response.BadRequest(c, missingLocationDetails(m))
		return
	}

	user.Username = *req.Username
	user.Name = *req.Name
	user.Surname = *req.Surname
	user.Email = *req.Email
	user.PhoneNumber = *req.PhoneNumber
	user.SetLocation(*req.Location.X, *req.Location.Y)

	if err := h.users.Update(user); err != nil {
		response.ServerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
