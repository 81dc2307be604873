package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"frutti-market/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	models.Carts = models.NewMemoryCartStore(time.Hour)

	cartCtrl := &CartController{}
	checkoutCtrl := &CheckoutController{}

	router := gin.New()
	router.POST("/cart/add", cartCtrl.AddToCart)
	router.GET("/cart/remove/:id", cartCtrl.RemoveFromCart)
	router.POST("/checkout", func(c *gin.Context) {
		// Stand-in for AuthMiddleware: an authenticated customer.
		c.Set("user_id", 1)
		checkoutCtrl.Checkout(c)
	})
	return router
}

func postForm(router *gin.Engine, path, form string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAddToCartAccumulatesAcrossRequests(t *testing.T) {
	router := newCartRouter()
	cookie := &http.Cookie{Name: cartCookie, Value: "test-cart"}

	w := postForm(router, "/cart/add", "product_id=7&cantidad=2&unidad=kg", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = postForm(router, "/cart/add", "product_id=7&cantidad=3&unidad=kg", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	cart, err := models.Carts.Get(context.Background(), "test-cart")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 5.0, cart[7].Quantity)
	assert.Equal(t, "kg", cart[7].Unit)
}

func TestAddToCartDefaults(t *testing.T) {
	router := newCartRouter()
	cookie := &http.Cookie{Name: cartCookie, Value: "test-cart"}

	w := postForm(router, "/cart/add", "product_id=3", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	cart, err := models.Carts.Get(context.Background(), "test-cart")
	require.NoError(t, err)
	assert.Equal(t, 1.0, cart[3].Quantity)
	assert.Equal(t, "kg", cart[3].Unit)
}

func TestAddToCartMintsCartCookie(t *testing.T) {
	router := newCartRouter()

	w := postForm(router, "/cart/add", "product_id=7&cantidad=1")
	require.Equal(t, http.StatusOK, w.Code)

	minted := false
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == cartCookie && cookie.Value != "" {
			minted = true
		}
	}
	assert.True(t, minted)
}

func TestAddToCartRejectsMissingProductID(t *testing.T) {
	router := newCartRouter()

	w := postForm(router, "/cart/add", "cantidad=2")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFromCartAbsentIsNoop(t *testing.T) {
	router := newCartRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart/remove/99", nil)
	req.AddCookie(&http.Cookie{Name: cartCookie, Value: "test-cart"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRemoveFromCartDeletesEntry(t *testing.T) {
	router := newCartRouter()
	cookie := &http.Cookie{Name: cartCookie, Value: "test-cart"}

	postForm(router, "/cart/add", "product_id=7&cantidad=2", cookie)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart/remove/7", nil)
	req.AddCookie(cookie)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	cart, err := models.Carts.Get(context.Background(), "test-cart")
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCheckoutEmptyCart(t *testing.T) {
	router := newCartRouter()

	w := postForm(router, "/checkout", "notas=rapido",
		&http.Cookie{Name: cartCookie, Value: "empty-cart"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Carrito vacío")
}
