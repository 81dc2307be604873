package controllers

import (
	"context"
	"log"
	"strconv"
	"strings"

	"frutti-market/libs"
	"frutti-market/models"
	"frutti-market/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct{}

// Dashboard godoc
// @Summary Admin dashboard
// @Description All orders joined to their customers, newest first
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin [get]
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	rows, err := models.DB.Query(context.Background(), `
		SELECT
			o.id,
			o.total,
			o.created_at,
			COALESCE(o.notas,''),
			u.nombre,
			u.email,
			COALESCE(u.telefono,''),
			COALESCE(u.direccion,'')
		FROM orders o
		JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC`)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load orders"})
		return
	}
	defer rows.Close()

	orders := []models.OrderSummary{}
	for rows.Next() {
		var o models.OrderSummary
		err := rows.Scan(&o.ID, &o.Total, &o.CreatedAt, &o.Notes,
			&o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.Address)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to load orders"})
			return
		}
		orders = append(orders, o)
	}

	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// GetProducts godoc
// @Summary List products (admin)
// @Description Full product list for the admin panel
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/products [get]
func (ctrl *AdminController) GetProducts(c *gin.Context) {
	rows, err := models.DB.Query(context.Background(),
		"SELECT "+productColumns+" FROM products ORDER BY id")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load products"})
		return
	}
	products, err := scanProducts(rows)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load products"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Products retrieved", "data": products})
}

// CreateProduct godoc
// @Summary Create product
// @Description Create a catalog entry. The image is either an `imagen` URL or
// @Description an `imagen_file` upload (Cloudinary when configured, local otherwise).
// @Tags Admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param nombre formData string true "Name"
// @Param categoria formData string true "Category"
// @Param precio formData number false "Price"
// @Param stock formData number false "Stock"
// @Param unidad formData string false "Unit (comma-separated units allowed)"
// @Param tamanos formData string false "Sizes"
// @Param opciones formData string false "Options"
// @Param descripcion formData string false "Description"
// @Param imagen formData string false "Image URL"
// @Param imagen_file formData file false "Image upload"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *AdminController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if req.Unit == "" {
		req.Unit = "kg"
	}
	req.Unit = strings.TrimSpace(req.Unit)

	image := req.Image
	if file, err := c.FormFile("imagen_file"); err == nil {
		localPath, err := utils.UploadFile(c, file, "products")
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		image = localPath

		if libs.CloudinaryConfigured() {
			url, err := libs.UploadToCloudinary(localPath)
			if err != nil {
				log.Println("Cloudinary upload failed, keeping local file:", err)
			} else {
				image = url
				utils.DeleteFile(localPath)
			}
		}
	}

	var productID int
	err := models.DB.QueryRow(context.Background(),
		`INSERT INTO products (nombre, categoria, precio, stock, unidad, tamanos, opciones, descripcion, imagen)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id`,
		req.Name, req.Category, req.Price, req.Stock, req.Unit,
		req.Sizes, req.Options, req.Description, image).Scan(&productID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Producto creado correctamente",
		"data":    gin.H{"id": productID},
	})
}

// GetOrderByID godoc
// @Summary Order detail (admin)
// @Description Order header joined to its customer plus line items with product names
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *AdminController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	ctx := context.Background()

	var order models.OrderSummary
	err := models.DB.QueryRow(ctx, `
		SELECT
			o.id,
			o.total,
			o.created_at,
			COALESCE(o.notas,''),
			u.nombre,
			u.email,
			COALESCE(u.telefono,''),
			COALESCE(u.direccion,'')
		FROM orders o
		JOIN users u ON o.user_id = u.id
		WHERE o.id = $1`, id).Scan(
		&order.ID, &order.Total, &order.CreatedAt, &order.Notes,
		&order.CustomerName, &order.CustomerEmail, &order.CustomerPhone, &order.Address)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Pedido no encontrado"})
		return
	}

	rows, err := models.DB.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, p.nombre, oi.cantidad,
			oi.unidad, COALESCE(oi.tamanio,''), COALESCE(oi.opcion,''), oi.precio_unit
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.id`, id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load order items"})
		return
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.Unit, &item.Size, &item.Option, &item.UnitPrice)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to load order items"})
			return
		}
		items = append(items, item)
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Order retrieved",
		"data": gin.H{
			"order": order,
			"items": items,
		},
	})
}
