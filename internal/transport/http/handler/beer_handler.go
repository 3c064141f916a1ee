package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"beer-market/internal/core/cache"
	"beer-market/internal/domain"
	"beer-market/internal/repo"
	"beer-market/internal/transport/http/response"
	"beer-market/pkg/utils"
)

const beerCacheTTL = 30 * time.Second

type BeerHandler struct {
	beers *repo.BeerRepo
	cache *cache.Cache // 可选；未配置 redis 时为 nil
	log   *zap.Logger
}

func NewBeerHandler(db *gorm.DB, ch *cache.Cache, l *zap.Logger) *BeerHandler {
	return &BeerHandler{beers: repo.NewBeerRepo(db), cache: ch, log: l}
}

// List GET /beers
func (h *BeerHandler) List(c *gin.Context) {
	beers, err := h.beers.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	views := make([]domain.BeerView, 0, len(beers))
	for i := range beers {
		views = append(views, beers[i].View())
	}
	c.JSON(http.StatusOK, views)
}

// Details GET /beer/:id/details
func (h *BeerHandler) Details(c *gin.Context) {
	id := c.Param("id")
	beer, err := h.find(c, id)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if beer == nil {
		response.NotFound(c, "Beer %s not found", id)
		return
	}
	c.JSON(http.StatusOK, beer.View())
}

func (h *BeerHandler) find(c *gin.Context, id string) (*domain.Beer, error) {
	if h.cache == nil {
		return h.beers.FindByID(id)
	}
	return cache.GetOrLoadJSON(h.cache, c.Request.Context(), "beer:"+id, beerCacheTTL,
		func(context.Context) (*domain.Beer, error) { return h.beers.FindByID(id) })
}

type beerAddReq struct {
	Brand   *string  `json:"brand"`
	Name    *string  `json:"name"`
	Volume  *float64 `json:"volume"`
	Alcohol *float64 `json:"alcohol"`
	Packing *string  `json:"packing"`
}

func (r *beerAddReq) missing() []string {
	var m []string
	if r.Brand == nil {
		m = append(m, "brand")
	}
	if r.Name == nil {
		m = append(m, "name")
	}
	if r.Volume == nil {
		m = append(m, "volume")
	}
	if r.Alcohol == nil {
		m = append(m, "alcohol")
	}
	if r.Packing == nil {
		m = append(m, "packing")
	}
	return m
}

// Add POST /beer/add
func (h *BeerHandler) Add(c *gin.Context) {
	var req beerAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if m := req.missing(); len(m) > 0 {
		response.BadRequest(c, missingParamsDetails(m))
		return
	}
	packing, ok := domain.ParsePacking(*req.Packing)
	if !ok {
		response.BadRequest(c, "Incorrect packing type - allowed values: can, bottle")
		return
	}

	beer := &domain.Beer{
		ID:      utils.NewID(),
		Brand:   *req.Brand,
		Name:    *req.Name,
		Volume:  *req.Volume,
		Alcohol: *req.Alcohol,
		Packing: packing,
	}
	if err := h.beers.Create(beer); err != nil {
		response.ServerError(c, err)
		return
	}
	h.log.Info("beer added", zap.String("id", beer.ID), zap.String("name", beer.Name))
	c.Status(http.StatusNoContent)
}
