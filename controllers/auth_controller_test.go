package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"frutti-market/middleware"
	"frutti-market/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", normalizeEmail("  Ana@Example.COM "))
	assert.Equal(t, "x@y.z", normalizeEmail("x@y.z"))
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", (&AuthController{}).Register)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader("nombre=Ana&email=ana%40example.com&password=123"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "al menos 6 caracteres")
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", (&AuthController{}).Register)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader("nombre=Ana&email=not-an-email&password=secreto1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// An unauthenticated checkout never reaches the handler, so no order row
// can be written.
func TestCheckoutRequiresLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	models.Carts = models.NewMemoryCartStore(time.Hour)

	router := gin.New()
	router.POST("/checkout", middleware.AuthMiddleware(), (&CheckoutController{}).Checkout)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader("notas="))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Debe iniciar sesión")
}
