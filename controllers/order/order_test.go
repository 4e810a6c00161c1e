package orderControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ministore/ministore-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Cart{}, &models.CartItem{}, &models.Order{},
	))

	r := gin.New()
	orders := r.Group("/orders")
	orders.POST("/:id", CheckoutHandler(db))
	orders.GET("/user/:userID", GetUserOrders(db))
	orders.GET("/:id", GetOrderByID(db))
	return db, r
}

func seedCart(t *testing.T, db *gorm.DB, email string) (models.User, models.Cart) {
	t.Helper()
	user := models.User{Email: email}
	require.NoError(t, db.Create(&user).Error)
	cart := models.Cart{UserID: user.ID}
	require.NoError(t, db.Create(&cart).Error)
	return user, cart
}

func TestCheckoutComputesTotal(t *testing.T) {
	db, r := setupTest(t)
	user, cart := seedCart(t, db, "total@example.com")

	require.NoError(t, db.Create(&models.Product{ID: 1, Title: "Drive", Price: 64}).Error)
	require.NoError(t, db.Create(&models.Product{ID: 9, Title: "Ring", Price: 9.99}).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: 1, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: 9, Quantity: 3}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", fmt.Sprintf("/orders/%d", user.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.InDelta(t, 2*64+3*9.99, order.Total, 1e-9)
	assert.Equal(t, user.ID, order.UserID)
	assert.NotEmpty(t, order.OrderRef)
}

func TestCheckoutClearsCartButKeepsIt(t *testing.T) {
	db, r := setupTest(t)
	user, cart := seedCart(t, db, "reuse@example.com")

	require.NoError(t, db.Create(&models.Product{ID: 5, Title: "Monitor", Price: 599}).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: 5, Quantity: 1}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", fmt.Sprintf("/orders/%d", user.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var items int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&items).Error)
	assert.Zero(t, items, "checkout must remove every cart item")

	var kept models.Cart
	require.NoError(t, db.First(&kept, cart.ID).Error, "the cart row itself must survive")

	// the cart is reusable: a second item and checkout work
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: 5, Quantity: 2}).Error)
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", fmt.Sprintf("/orders/%d", user.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var second models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.InDelta(t, 2*599, second.Total, 1e-9)
}

func TestCheckoutKeepsConcurrentlyAddedItem(t *testing.T) {
	db, r := setupTest(t)
	user, cart := seedCart(t, db, "late@example.com")

	require.NoError(t, db.Create(&models.Product{ID: 1, Title: "Drive", Price: 10}).Error)
	require.NoError(t, db.Create(&models.Product{ID: 2, Title: "Ring", Price: 5}).Error)
	require.NoError(t, db.Create(&models.CartItem{CartID: cart.ID, ProductID: 1, Quantity: 1}).Error)

	// Simulate an add-to-cart landing between the total computation and the
	// cart clear: right after the order row is created, slip a new item into
	// the cart.
	err := db.Callback().Create().After("gorm:create").Register("late_add", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*models.Order); !ok {
			return
		}
		late := models.CartItem{CartID: cart.ID, ProductID: 2, Quantity: 3}
		require.NoError(t, tx.Session(&gorm.Session{NewDB: true}).Create(&late).Error)
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", fmt.Sprintf("/orders/%d", user.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.InDelta(t, 10.0, order.Total, 1e-9, "only the items read in the transaction are billed")

	// the late item must survive the clear with its quantity intact
	var remaining []models.CartItem
	require.NoError(t, db.Where("cart_id = ?", cart.ID).Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, uint(2), remaining[0].ProductID)
	assert.Equal(t, 3, remaining[0].Quantity)

	// and it stays billable by the next checkout
	require.NoError(t, db.Callback().Create().Remove("late_add"))
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", fmt.Sprintf("/orders/%d", user.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var second models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.InDelta(t, 3*5.0, second.Total, 1e-9)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db, r := setupTest(t)
	user, _ := seedCart(t, db, "empty@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", fmt.Sprintf("/orders/%d", user.ID), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders, "empty cart must not create a zero-total order")
}

func TestCheckoutNoCart(t *testing.T) {
	db, r := setupTest(t)
	user := models.User{Email: "nocart@example.com"}
	require.NoError(t, db.Create(&user).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", fmt.Sprintf("/orders/%d", user.ID), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutUserNotFound(t *testing.T) {
	_, r := setupTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/orders/999", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderByID(t *testing.T) {
	db, r := setupTest(t)
	user, _ := seedCart(t, db, "lookup@example.com")
	order := models.Order{UserID: user.ID, OrderRef: "ref-1", Total: 42}
	require.NoError(t, db.Create(&order).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", fmt.Sprintf("/orders/%d", order.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 42.0, got.Total)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/orders/999", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserOrders(t *testing.T) {
	db, r := setupTest(t)
	user, _ := seedCart(t, db, "history@example.com")
	require.NoError(t, db.Create(&models.Order{UserID: user.ID, OrderRef: "ref-a", Total: 10}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: user.ID, OrderRef: "ref-b", Total: 20}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", fmt.Sprintf("/orders/user/%d", user.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
