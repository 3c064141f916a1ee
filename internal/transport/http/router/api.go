package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"beer-market/internal/core/cache"
	"beer-market/internal/transport/http/handler"
	mdw "beer-market/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, db *gorm.DB, ch *cache.Cache) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	beerH := handler.NewBeerHandler(db, ch, l)
	offerH := handler.NewOfferHandler(db, l)
	userH := handler.NewUserHandler(db, l)

	r.GET("/beers", beerH.List)
	r.GET("/beer/:id/details", beerH.Details)
	r.POST("/beer/add", beerH.Add)

	r.GET("/offers", offerH.List)
	r.GET("/offer/buy/offers", offerH.ListBuy)
	r.GET("/offer/sell/offers", offerH.ListSell)
	r.GET("/offer/:id/details", offerH.Details)
	r.GET("/offer/find/:x/:y/:radius", offerH.Nearby)
	r.POST("/offer/add", offerH.Add)
	r.POST("/offer/:id/buy", offerH.Buy)
	r.PUT("/offer/:id/update", offerH.Update)
	r.DELETE("/offer/:id/delete", offerH.Delete)

	r.GET("/user/:id/details", userH.Details)
	r.GET("/user/:id/offers", userH.Offers)
	r.GET("/user/:id/history", userH.History)
	r.PUT("/user/:id/update", userH.Update)

	return r
}
