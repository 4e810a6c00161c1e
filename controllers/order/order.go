package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ministore/ministore-api/models"
	"gorm.io/gorm"
)

// ErrEmptyCart is returned when checkout finds no cart or no items for the user.
var ErrEmptyCart = errors.New("cart is empty")

// Generate unique order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// Checkout converts the user's cart into an order: the total is the sum of
// quantity times cached product price over the cart's items at this instant.
// The cart read, total computation, order creation and item removal all run
// in one transaction, and only the items actually billed are removed, so an
// item added concurrently is never wiped unbilled. The cart row itself
// survives, empty, for reuse.
func Checkout(db *gorm.DB, userID uint) (models.Order, error) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return models.Order{}, err
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.Preload("Items").Preload("Items.Product").
			Where("user_id = ?", userID).First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			return ErrEmptyCart
		}
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		var total float64
		itemIDs := make([]uint, 0, len(cart.Items))
		for _, item := range cart.Items {
			total += item.Product.Price * float64(item.Quantity)
			itemIDs = append(itemIDs, item.ID)
		}

		order = models.Order{
			UserID:    userID,
			OrderRef:  generateOrderRef(),
			Total:     total,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CartItem{}, itemIDs).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	log.Printf("Order %d created for user %d, total %.2f", order.ID, userID, order.Total)
	return order, nil
}

// -------- Handlers --------

// POST /orders/:id  (id = user id)
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		order, err := Checkout(db, uint(userID))
		switch {
		case err == nil:
			c.JSON(http.StatusCreated, order)
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		}
	}
}

// GET /orders/:id  (id = order id)
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /orders/user/:userID
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("userID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var orders []models.Order
		if err := db.Where("user_id = ?", userID).
			Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}
