package controllers

import (
	"context"
	"strconv"
	"time"

	"frutti-market/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartController struct{}

const cartCookie = "cart_id"

// cartID returns the cart identifier for this browser, minting a new one
// when the cookie is missing. The cart itself lives server-side with a
// TTL; the cookie only names it.
func cartID(c *gin.Context) string {
	id, err := c.Cookie(cartCookie)
	if err == nil && id != "" {
		return id
	}

	id = uuid.NewString()
	c.SetCookie(cartCookie, id, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
	return id
}

// fetchCartProducts re-reads the catalog rows for every product still in
// the cart. Prices are never cached across requests.
func fetchCartProducts(ctx context.Context, cart models.Cart) (map[int]models.Product, error) {
	products := make(map[int]models.Product, len(cart))
	for id := range cart {
		product, err := fetchProduct(ctx, id)
		if err != nil {
			// Vanished since it was added; PriceCart reports it as dropped.
			continue
		}
		products[id] = *product
	}
	return products, nil
}

// GetCart godoc
// @Summary View cart
// @Description List cart entries priced against the current catalog
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	ctx := context.Background()
	id := cartID(c)

	cart, err := models.Carts.Get(ctx, id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	products, err := fetchCartProducts(ctx, cart)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	lines, total, dropped := models.PriceCart(cart, products)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data": gin.H{
			"items":   lines,
			"total":   total,
			"dropped": dropped,
		},
	})
}

// AddToCart godoc
// @Summary Add to cart
// @Description Add a product to the session cart; quantities accumulate on re-add
// @Tags Cart
// @Accept x-www-form-urlencoded
// @Produce json
// @Param product_id formData int true "Product ID"
// @Param cantidad formData number false "Quantity" default(1)
// @Param unidad formData string false "Unit" default(kg)
// @Param tamanio formData string false "Size"
// @Param opcion formData string false "Option"
// @Success 200 {object} models.Response
// @Router /cart/add [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.CartAddRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Unit == "" {
		req.Unit = "kg"
	}

	entry := models.CartEntry{
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Size:     req.Size,
		Option:   req.Option,
	}

	if err := models.Carts.Add(context.Background(), cartID(c), req.ProductID, entry); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Producto añadido al carrito"})
}

// RemoveFromCart godoc
// @Summary Remove from cart
// @Description Remove a product from the cart; removing an absent product is a no-op
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/remove/{id} [get]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	if err := models.Carts.Remove(context.Background(), cartID(c), id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Producto eliminado"})
}
