package cartControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ministore/ministore-api/catalog"
	"github.com/ministore/ministore-api/models"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// POST /cart/:id  (id = user id)
// Returns the user's existing cart, or creates and returns a new empty one.
func CreateOrGetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var cart models.Cart
		err = db.Preload("Items").Preload("Items.Product").
			Where("user_id = ?", userID).First(&cart).Error
		if err == nil {
			c.JSON(http.StatusOK, cart)
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate user"})
			}
			return
		}

		cart = models.Cart{UserID: user.ID, Items: []models.CartItem{}}
		if err := db.Create(&cart).Error; err != nil {
			// A concurrent first request may have created the cart between
			// the lookup and here; the unique index on user_id rejects ours.
			// Degrade to the lookup path.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				if err := db.Preload("Items").Preload("Items.Product").
					Where("user_id = ?", userID).First(&cart).Error; err == nil {
					c.JSON(http.StatusOK, cart)
					return
				}
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
			return
		}
		log.Printf("Created cart %d for user %d", cart.ID, user.ID)

		c.JSON(http.StatusCreated, cart)
	}
}

// GET /cart/:id  (id = cart id)
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Preload("Items.Product").
			First(&cart, cartID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			}
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart/:id/items  (id = cart id)
// Adds a product to the cart, merging quantities when the (cart, product)
// pair already has a row.
func AddCartItem(db *gorm.DB, provider catalog.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart ID"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		if err := db.First(&cart, cartID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			}
			return
		}

		if _, err := EnsureProductCached(db, provider, input.ProductID); err != nil {
			switch {
			case errors.Is(err, catalog.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, catalog.ErrUpstream):
				c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch product details from catalog"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve product"})
			}
			return
		}

		var item models.CartItem
		err = db.Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).
			First(&item).Error
		switch {
		case err == nil:
			item.Quantity += input.Quantity
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		case err == gorm.ErrRecordNotFound:
			item = models.CartItem{
				CartID:    cart.ID,
				ProductID: input.ProductID,
				Quantity:  input.Quantity,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		if err := db.Preload("Items").Preload("Items.Product").
			First(&cart, cart.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// EnsureProductCached returns the local product row for productID, fetching
// it from the catalog and persisting a mirror when no local row exists yet.
func EnsureProductCached(db *gorm.DB, provider catalog.Provider, productID uint) (models.Product, error) {
	var product models.Product
	err := db.First(&product, productID).Error
	if err == nil {
		return product, nil
	}
	if err != gorm.ErrRecordNotFound {
		return models.Product{}, err
	}

	remote, err := provider.GetProduct(productID)
	if err != nil {
		return models.Product{}, err
	}

	product = models.Product{
		ID:          remote.ID,
		Title:       remote.Title,
		Description: remote.Description,
		Price:       remote.Price,
		Category:    remote.Category,
		Image:       remote.Image,
	}
	if err := db.Create(&product).Error; err != nil {
		return models.Product{}, err
	}
	log.Printf("Cached catalog product %d locally", productID)
	return product, nil
}
