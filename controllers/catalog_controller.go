package controllers

import (
	"context"
	"strconv"
	"strings"

	"frutti-market/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type CatalogController struct{}

const productColumns = `id, nombre, categoria, precio, stock, unidad,
	COALESCE(tamanos,''), COALESCE(opciones,''), COALESCE(descripcion,''), COALESCE(imagen,''), created_at`

func scanProducts(rows pgx.Rows) ([]models.Product, error) {
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Unit,
			&p.Sizes, &p.Options, &p.Description, &p.Image, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func fetchProduct(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	err := models.DB.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id=$1", id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.Stock, &p.Unit,
		&p.Sizes, &p.Options, &p.Description, &p.Image, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Home godoc
// @Summary Catalog home
// @Description Get home page sections: up to 10 products per category
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router / [get]
func (ctrl *CatalogController) Home(c *gin.Context) {
	ctx := context.Background()

	catRows, err := models.DB.Query(ctx,
		"SELECT DISTINCT categoria FROM products ORDER BY categoria")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load catalog"})
		return
	}

	categories := []string{}
	for catRows.Next() {
		var name string
		if err := catRows.Scan(&name); err != nil {
			catRows.Close()
			c.JSON(500, gin.H{"success": false, "message": "Failed to load catalog"})
			return
		}
		categories = append(categories, name)
	}
	catRows.Close()

	sections := []gin.H{}
	for _, category := range categories {
		rows, err := models.DB.Query(ctx,
			"SELECT "+productColumns+" FROM products WHERE categoria=$1 ORDER BY nombre LIMIT 10",
			category)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to load catalog"})
			return
		}
		products, err := scanProducts(rows)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to load catalog"})
			return
		}
		sections = append(sections, gin.H{"categoria": category, "productos": products})
	}

	c.JSON(200, gin.H{"success": true, "message": "Catalog retrieved", "data": sections})
}

// Search godoc
// @Summary Search products
// @Description Case-insensitive substring search over name and description
// @Tags Catalog
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} models.Response
// @Router /buscar [get]
func (ctrl *CatalogController) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))

	products := []models.Product{}
	if q != "" {
		like := "%" + q + "%"
		rows, err := models.DB.Query(context.Background(),
			"SELECT "+productColumns+" FROM products WHERE nombre ILIKE $1 OR descripcion ILIKE $1 ORDER BY nombre",
			like)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Search failed"})
			return
		}
		products, err = scanProducts(rows)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Search failed"})
			return
		}
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Resultados: " + q,
		"data":    products,
	})
}

// Category godoc
// @Summary List category
// @Description Get all products of one category
// @Tags Catalog
// @Produce json
// @Param nombre path string true "Category name"
// @Success 200 {object} models.Response
// @Router /categoria/{nombre} [get]
func (ctrl *CatalogController) Category(c *gin.Context) {
	category := c.Param("nombre")

	rows, err := models.DB.Query(context.Background(),
		"SELECT "+productColumns+" FROM products WHERE categoria=$1 ORDER BY nombre",
		category)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load category"})
		return
	}
	products, err := scanProducts(rows)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load category"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Category retrieved",
		"data":    gin.H{"categoria": category, "productos": products},
	})
}

// ProductByID godoc
// @Summary Product detail
// @Description Get a single product by id
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /producto/{id} [get]
func (ctrl *CatalogController) ProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := fetchProduct(context.Background(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Producto no encontrado"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}
