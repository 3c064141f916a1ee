package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"beer-market/internal/domain"
	"beer-market/internal/repo"
	"beer-market/internal/transport/http/response"
)

type OfferHandler struct {
	db      *gorm.DB
	offers  *repo.OfferRepo
	beers   *repo.BeerRepo
	users   *repo.UserRepo
	history *repo.HistoryRepo
	log     *zap.Logger
}

func NewOfferHandler(db *gorm.DB, l *zap.Logger) *OfferHandler {
	return &OfferHandler{
		db:      db,
		offers:  repo.NewOfferRepo(db),
		beers:   repo.NewBeerRepo(db),
		users:   repo.NewUserRepo(db),
		history: repo.NewHistoryRepo(db),
		log:     l,
	}
}

func offerViews(offers []domain.Offer) []domain.OfferView {
	views := make([]domain.OfferView, 0, len(offers))
	for i := range offers {
		views = append(views, offers[i].View())
	}
	return views
}

// List GET /offers
func (h *OfferHandler) List(c *gin.Context) {
	offers, err := h.offers.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, offerViews(offers))
}

// ListBuy GET /offer/buy/offers
func (h *OfferHandler) ListBuy(c *gin.Context) {
	offers, err := h.offers.ListByType(domain.TxBuy)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, offerViews(offers))
}

// ListSell GET /offer/sell/offers
func (h *OfferHandler) ListSell(c *gin.Context) {
	offers, err := h.offers.ListByType(domain.TxSell)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, offerViews(offers))
}

// Details GET /offer/:id/details
func (h *OfferHandler) Details(c *gin.Context) {
	id := c.Param("id")
	offer, err := h.offers.FindByID(id)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if offer == nil {
		response.NotFound(c, "Offer %s not found", id)
		return
	}
	c.JSON(http.StatusOK, offer.View())
}

// Nearby GET /offer/find/:x/:y/:radius
// 全量线性扫描 + haversine 过滤；当前数据规模下无需空间索引
func (h *OfferHandler) Nearby(c *gin.Context) {
	x, errX := strconv.ParseFloat(c.Param("x"), 64)
	y, errY := strconv.ParseFloat(c.Param("y"), 64)
	radius, errR := strconv.ParseFloat(c.Param("radius"), 64)
	if errX != nil || errY != nil || errR != nil {
		response.BadRequest(c, "x, y and radius must be numbers")
		return
	}

	offers, err := h.offers.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	nearby := make([]domain.OfferView, 0)
	for i := range offers {
		if offers[i].DistanceTo(x, y) <= radius {
			nearby = append(nearby, offers[i].View())
		}
	}
	c.JSON(http.StatusOK, nearby)
}

type offerAddReq struct {
	Owner    *string       `json:"owner"`
	Beer     *string       `json:"beer"`
	Amount   *int          `json:"amount"`
	Price    *float64      `json:"price"`
	Location *locationBody `json:"location"`
	Type     *string       `json:"type"`
}

func (r *offerAddReq) missing() []string {
	var m []string
	if r.Owner == nil {
		m = append(m, "owner")
	}
	if r.Beer == nil {
		m = append(m, "beer")
	}
	if r.Amount == nil {
		m = append(m, "amount")
	}
	if r.Price == nil {
		m = append(m, "price")
	}
	if r.Location == nil {
		m = append(m, "location")
	}
	if r.Type == nil {
		m = append(m, "type")
	}
	return m
}

// Add POST /offer/add
func (h *OfferHandler) Add(c *gin.Context) {
	var req offerAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if m := req.missing(); len(m) > 0 {
		response.BadRequest(c, missingParamsDetails(m))
		return
	}

	user, err := h.users.FindByID(*req.Owner)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if user == nil {
		response.BadRequest(c, fmt.Sprintf("User %s not found", *req.Owner))
		return
	}

	beer, err := h.beers.FindByID(*req.Beer)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if beer == nil {
		response.BadRequest(c, fmt.Sprintf("Beer %s not found", *req.Beer))
		return
	}

	if m := req.Location.missing(); len(m) > 0 {
		response.BadRequest(c, missingLocationDetails(m))
		return
	}

	txType, ok := domain.ParseTxType(*req.Type)
	if !ok {
		response.BadRequest(c, "Incorrect packing type - allowed values: buy, sell")
		return
	}

	offer := domain.NewOffer()
	offer.OwnerID = user.ID
	offer.BeerID = beer.ID
	offer.Amount = *req.Amount
	offer.Price = *req.Price
	offer.SetLocation(*req.Location.X, *req.Location.Y)
	offer.Type = txType

	if err := h.offers.Create(offer); err != nil {
		response.ServerError(c, err)
		return
	}
	h.log.Info("offer added",
		zap.String("id", offer.ID),
		zap.String("owner", offer.OwnerID),
		zap.String("type", string(offer.Type)),
	)
	c.Status(http.StatusNoContent)
}

type offerUpdateReq struct {
	Beer     *string       `json:"beer"`
	Amount   *int          `json:"amount"`
	Price    *float64      `json:"price"`
	Location *locationBody `json:"location"`
}

func (r *offerUpdateReq) missing() []string {
	var m []string
	if r.Beer == nil {
		m = append(m, "beer")
	}
	if r.Amount == nil {
		m = append(m, "amount")
	}
	if r.Price == nil {
		m = append(m, "price")
	}
	if r.Location == nil {
		m = append(m, "location")
	}
	return m
}

// Update PUT /offer/:id/update
// owner 与 type 创建后不可改
func (h *OfferHandler) Update(c *gin.Context) {
	id := c.Param("id")
	offer, err := h.offers.FindByID(id)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if offer == nil {
		response.NotFound(c, "Offer %s not found", id)
		return
	}

	var req offerUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if m := req.missing(); len(m) > 0 {
		response.BadRequest(c, missingParamsDetails(m))
		return
	}

	beer, err := h.beers.FindByID(*req.Beer)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if beer == nil {
		response.BadRequest(c, fmt.Sprintf("Beer %s not found", *req.Beer))
		return
	}

	if m := req.Location.missing(); len(m) > 0 {
		response.BadRequest(c, missingLocationDetails(m))
		return
	}

	offer.BeerID = beer.ID
	offer.Amount = *req.Amount
	offer.Price = *req.Price
	offer.SetLocation(*req.Location.X, *req.Location.Y)

	if err := h.offers.Update(offer); err != nil {
		response.ServerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type offerBuyReq struct {
	Buyer  *string `json:"buyer"`
	Amount *int    `json:"amount"`
}

func (r *offerBuyReq) missing() []string {
	var m []string
	if r.Buyer == nil {
		m = append(m, "buyer")
	}
	if r.Amount == nil {
		m = append(m, "amount")
	}
	return m
}

// Buy POST /offer/:id/buy
// 同一事务内扣减数量并写入成交记录；买到 0 的报价继续保留
func (h *OfferHandler) Buy(c *gin.Context) {
	id := c.Param("id")
	offer, err := h.offers.FindByID(id)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if offer == nil {
		response.NotFound(c, "Offer %s not found", id)
		return
	}

	var req offerBuyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if m := req.missing(); len(m) > 0 {
		response.BadRequest(c, missingParamsDetails(m))
		return
	}

	buyer, err := h.users.FindByID(*req.Buyer)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if buyer == nil {
		response.BadRequest(c, fmt.Sprintf("User %s not found", *req.Buyer))
		return
	}

	if !offer.IsSelling() {
		response.BadRequest(c, fmt.Sprintf("Offer %s is not a sell offer", id))
		return
	}
	amount := *req.Amount
	if amount <= 0 || amount > offer.Amount {
		response.BadRequest(c, fmt.Sprintf("Incorrect amount - must be between 1 and %d", offer.Amount))
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		offer.Amount -= amount
		if e := repo.NewOfferRepo(tx).Update(offer); e != nil {
			return e
		}
		entry := domain.NewHistory(&offer.ID, buyer.ID, offer.OwnerID, amount, offer.Price)
		return repo.NewHistoryRepo(tx).Create(entry)
	})
	if err != nil {
		response.ServerError(c, err)
		return
	}
	h.log.Info("offer bought",
		zap.String("offer", offer.ID),
		zap.String("buyer", buyer.ID),
		zap.Int("amount", amount),
	)
	c.Status(http.StatusNoContent)
}

// Delete DELETE /offer/:id/delete
// 级联策略：相关成交记录孤儿化（外键置空），再删报价
func (h *OfferHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	offer, err := h.offers.FindByID(id)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if offer == nil {
		response.NotFound(c, "Offer %s not found", id)
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if e := repo.NewHistoryRepo(tx).DetachOffer(id); e != nil {
			return e
		}
		return repo.NewOfferRepo(tx).Delete(id)
	})
	if err != nil {
		response.ServerError(c, err)
		return
	}
	h.log.Info("offer deleted", zap.String("id", id))
	c.Status(http.StatusNoContent)
}
