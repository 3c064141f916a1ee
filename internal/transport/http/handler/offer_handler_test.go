package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"beer-market/internal/domain"
	"beer-market/internal/fixtures"
)

func addOffer(t *testing.T, r *gin.Engine, db *gorm.DB, txType string, amount int, x, y float64) *domain.Offer {
	t.Helper()
	w := httpDo(r, "POST", "/offer/add", map[string]interface{}{
		"owner":    fixtures.DemoUserID,
		"beer":     fixtures.DemoBeerID,
		"amount":   amount,
		"price":    9.99,
		"location": map[string]float64{"x": x, "y": y},
		"type":     txType,
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	var o domain.Offer
	require.NoError(t, db.Order("created_at desc").First(&o).Error)
	return &o
}

func TestOfferAddAndDetails(t *testing.T) {
	r, db := setupRouter(t)

	o := addOffer(t, r, db, "sell", 5, domain.CampusX, domain.CampusY)
	require.Equal(t, domain.TxSell, o.Type)
	require.Equal(t, 5, o.Amount)

	w := httpDo(r, "GET", "/offer/"+o.ID+"/details", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Equal(t, fixtures.DemoUserID, view["owner"])
	require.Equal(t, fixtures.DemoBeerID, view["beer"])
	require.Equal(t, "sell", view["type"])
	loc := view["location"].(map[string]interface{})
	require.Equal(t, domain.CampusX, loc["x"])
	require.Equal(t, domain.CampusY, loc["y"])
}

func TestOfferDetailsNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "GET", "/offer/t_unknown/details", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Offer t_unknown not found", decodeErr(t, w).Message)
}

func TestOfferAddValidation(t *testing.T) {
	r, _ := setupRouter(t)

	// 缺参数
	w := httpDo(r, "POST", "/offer/add", map[string]interface{}{
		"owner": fixtures.DemoUserID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing following params: beer, amount, price, location, type", decodeErr(t, w).Details)

	// owner 不存在
	w = httpDo(r, "POST", "/offer/add", map[string]interface{}{
		"owner":    "t_unknown",
		"beer":     fixtures.DemoBeerID,
		"amount":   1,
		"price":    5.0,
		"location": map[string]float64{"x": 50, "y": 19},
		"type":     "sell",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "User t_unknown not found", decodeErr(t, w).Details)

	// location 缺子字段
	w = httpDo(r, "POST", "/offer/add", map[string]interface{}{
		"owner":    fixtures.DemoUserID,
		"beer":     fixtures.DemoBeerID,
		"amount":   1,
		"price":    5.0,
		"location": map[string]float64{"x": 50},
		"type":     "sell",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing following params in location: y", decodeErr(t, w).Details)

	// type 非法
	w = httpDo(r, "POST", "/offer/add", map[string]interface{}{
		"owner":    fixtures.DemoUserID,
		"beer":     fixtures.DemoBeerID,
		"amount":   1,
		"price":    5.0,
		"location": map[string]float64{"x": 50, "y": 19},
		"type":     "swap",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Incorrect packing type - allowed values: buy, sell", decodeErr(t, w).Details)
}

func TestOfferTypeFilters(t *testing.T) {
	r, db := setupRouter(t)

	addOffer(t, r, db, "sell", 1, domain.CampusX, domain.CampusY)
	addOffer(t, r, db, "buy", 1, domain.CampusX, domain.CampusY)
	addOffer(t, r, db, "SELL", 1, domain.CampusX, domain.CampusY)

	require.Equal(t, 3, countOf(t, r, "/offers"))
	require.Equal(t, 2, countOf(t, r, "/offer/sell/offers"))
	require.Equal(t, 1, countOf(t, r, "/offer/buy/offers"))
}

func TestOfferNearby(t *testing.T) {
	r, db := setupRouter(t)

	// 校区一个，华沙一个
	addOffer(t, r, db, "sell", 1, domain.CampusX, domain.CampusY)
	addOffer(t, r, db, "sell", 1, 52.2297, 21.0122)

	// Olimp 宿舍到校区约 0.17 km
	require.Equal(t, 1, countOf(t, r, "/offer/find/50.0692278/19.9043930/0.2"))
	require.Equal(t, 0, countOf(t, r, "/offer/find/50.0692278/19.9043930/0.1"))
	require.Equal(t, 2, countOf(t, r, "/offer/find/50.0692278/19.9043930/500"))

	w := httpDo(r, "GET", "/offer/find/a/b/c", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOfferUpdate(t *testing.T) {
	r, db := setupRouter(t)
	o := addOffer(t, r, db, "sell", 2, domain.CampusX, domain.CampusY)

	// 未知报价
	w := httpDo(r, "PUT", "/offer/t_unknown/update", map[string]interface{}{})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Offer t_unknown not found", decodeErr(t, w).Message)

	// 缺参数
	w = httpDo(r, "PUT", "/offer/"+o.ID+"/update", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing following params: beer, amount, price, location", decodeErr(t, w).Details)

	// beer 不存在
	w = httpDo(r, "PUT", "/offer/"+o.ID+"/update", map[string]interface{}{
		"beer":     "t_unknown",
		"amount":   3,
		"price":    12.5,
		"location": map[string]float64{"x": 51, "y": 20},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Beer t_unknown not found", decodeErr(t, w).Details)

	// 成功更新；owner 和 type 不变
	w = httpDo(r, "PUT", "/offer/"+o.ID+"/update", map[string]interface{}{
		"beer":     fixtures.DemoBeerID,
		"amount":   3,
		"price":    12.5,
		"location": map[string]float64{"x": 51, "y": 20},
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	var got domain.Offer
	require.NoError(t, db.First(&got, "id = ?", o.ID).Error)
	require.Equal(t, 3, got.Amount)
	require.Equal(t, 12.5, got.Price)
	require.Equal(t, 51.0, got.LocationX)
	require.Equal(t, fixtures.DemoUserID, got.OwnerID)
	require.Equal(t, domain.TxSell, got.Type)
}

func TestOfferBuy(t *testing.T) {
	r, db := setupRouter(t)
	o := addOffer(t, r, db, "sell", 5, domain.CampusX, domain.CampusY)

	buyer := domain.NewUser()
	buyer.Username = "thirsty"
	buyer.Name = "Anna"
	buyer.Surname = "Nowak"
	buyer.Email = "anowak@example.com"
	buyer.PhoneNumber = "321321321"
	require.NoError(t, db.Create(buyer).Error)

	// 缺参数
	w := httpDo(r, "POST", "/offer/"+o.ID+"/buy", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Missing following params: buyer, amount", decodeErr(t, w).Details)

	// buyer 不存在
	w = httpDo(r, "POST", "/offer/"+o.ID+"/buy", map[string]interface{}{
		"buyer": "t_unknown", "amount": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "User t_unknown not found", decodeErr(t, w).Details)

	// 超量
	w = httpDo(r, "POST", "/offer/"+o.ID+"/buy", map[string]interface{}{
		"buyer": buyer.ID, "amount": 10,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Incorrect amount - must be between 1 and 5", decodeErr(t, w).Details)

	// 成功：数量扣减 + 写成交记录
	w = httpDo(r, "POST", "/offer/"+o.ID+"/buy", map[string]interface{}{
		"buyer": buyer.ID, "amount": 2,
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	var got domain.Offer
	require.NoError(t, db.First(&got, "id = ?", o.ID).Error)
	require.Equal(t, 3, got.Amount)

	var entries []domain.History
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	require.Equal(t, buyer.ID, entries[0].BuyerID)
	require.Equal(t, fixtures.DemoUserID, entries[0].SellerID)
	require.Equal(t, 2, entries[0].Amount)
	require.NotNil(t, entries[0].OfferID)
	require.Equal(t, o.ID, *entries[0].OfferID)

	// buy 类型的报价不能被购买
	buyOffer := addOffer(t, r, db, "buy", 1, domain.CampusX, domain.CampusY)
	w = httpDo(r, "POST", "/offer/"+buyOffer.ID+"/buy", map[string]interface{}{
		"buyer": buyer.ID, "amount": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Offer "+buyOffer.ID+" is not a sell offer", decodeErr(t, w).Details)
}

func TestOfferDeleteNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "DELETE", "/offer/t_unknown/delete", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Offer t_unknown not found", decodeErr(t, w).Message)
}

func TestOfferDeleteOrphansHistory(t *testing.T) {
	r, db := setupRouter(t)
	o := addOffer(t, r, db, "sell", 5, domain.CampusX, domain.CampusY)

	entry := domain.NewHistory(&o.ID, fixtures.DemoUserID, fixtures.DemoUserID, 1, o.Price)
	require.NoError(t, db.Create(entry).Error)

	w := httpDo(r, "DELETE", "/offer/"+o.ID+"/delete", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// 成交记录保留，外键置空
	var got domain.History
	require.NoError(t, db.First(&got, "id = ?", entry.ID).Error)
	require.Nil(t, got.OfferID)

	// 报价已不可见
	w = httpDo(r, "GET", "/offer/"+o.ID+"/details", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
