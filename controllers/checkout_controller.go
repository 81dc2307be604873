package controllers

import (
	"context"
	"log"
	"sort"

	"frutti-market/models"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct{}

// Checkout godoc
// @Summary Checkout
// @Description Turn the session cart into a persisted order. The order header
// @Description and all its items are written in one transaction; each item
// @Description freezes the catalog price observed at checkout time.
// @Tags Checkout
// @Security BearerAuth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param notas formData string false "Order note"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	ctx := context.Background()
	userID := c.GetInt("user_id")

	var req models.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	id := cartID(c)
	cart, err := models.Carts.Get(ctx, id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cart"})
		return
	}

	if len(cart) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Carrito vacío"})
		return
	}

	tx, err := models.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to start transaction"})
		return
	}
	defer tx.Rollback(ctx)

	// Authoritative prices are the ones read inside this transaction,
	// not whatever the cart saw when the product was added.
	productIDs := make([]int, 0, len(cart))
	for pid := range cart {
		productIDs = append(productIDs, pid)
	}
	sort.Ints(productIDs)

	products := make(map[int]models.Product, len(cart))
	dropped := []int{}
	for _, pid := range productIDs {
		var p models.Product
		err := tx.QueryRow(ctx,
			"SELECT id, nombre, precio, unidad FROM products WHERE id=$1", pid).Scan(
			&p.ID, &p.Name, &p.Price, &p.Unit)
		if err != nil {
			dropped = append(dropped, pid)
			continue
		}
		products[pid] = p
	}

	lines, total, _ := models.PriceCart(cart, products)
	if len(lines) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Carrito vacío"})
		return
	}

	order := models.Order{UserID: userID, Total: total, Notes: req.Notes}
	err = tx.QueryRow(ctx,
		"INSERT INTO orders (user_id, total, notas) VALUES ($1,$2,$3) RETURNING id, created_at",
		userID, total, req.Notes).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	for _, line := range lines {
		item := models.OrderItem{
			OrderID:     order.ID,
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Unit:        line.Unit,
			Size:        line.Size,
			Option:      line.Option,
			UnitPrice:   line.Product.Price,
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, cantidad, unidad, tamanio, opcion, precio_unit)
			 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
			item.OrderID, item.ProductID, item.Quantity, item.Unit, item.Size,
			item.Option, item.UnitPrice).Scan(&item.ID)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to create order items"})
			return
		}
		order.Items = append(order.Items, item)
	}

	if err = tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to commit order"})
		return
	}

	// The cart only empties once the order is durable.
	if err := models.Carts.Clear(ctx, id); err != nil {
		log.Println("Failed to clear cart after checkout:", err)
	}

	ctrl.sendConfirmation(ctx, userID, &order)

	c.JSON(201, gin.H{
		"success": true,
		"message": "Pedido realizado con éxito",
		"data": gin.H{
			"order":   order,
			"dropped": dropped,
		},
	})
}

// sendConfirmation emails the order summary when SMTP is configured.
// Never fails the checkout.
func (ctrl *CheckoutController) sendConfirmation(ctx context.Context, userID int, order *models.Order) {
	emailService, err := models.NewEmailService()
	if err != nil {
		return
	}

	var email, name string
	err = models.DB.QueryRow(ctx,
		"SELECT email, nombre FROM users WHERE id=$1", userID).Scan(&email, &name)
	if err != nil {
		return
	}

	go func() {
		if err := emailService.SendOrderConfirmation(email, name, order); err != nil {
			log.Println("Failed to send order confirmation:", err)
		}
	}()
}
