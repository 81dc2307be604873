package controllers

import (
	"context"
	"errors"
	"strings"
	"time"

	"frutti-market/middleware"
	"frutti-market/models"
	"frutti-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

type AuthController struct{}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	if len(req.Password) < 6 {
		c.JSON(400, gin.H{"success": false, "message": "La contraseña debe tener al menos 6 caracteres"})
		return
	}

	email := normalizeEmail(req.Email)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	var userID int
	err = models.DB.QueryRow(context.Background(),
		"INSERT INTO users (nombre, apellidos, email, telefono, password_hash) VALUES ($1,$2,$3,$4,$5) RETURNING id",
		strings.TrimSpace(req.Name), strings.TrimSpace(req.Surname), email,
		strings.TrimSpace(req.Phone), hash).Scan(&userID)

	if err != nil {
		if isUniqueViolation(err) {
			c.JSON(400, gin.H{"success": false, "message": "Ese correo ya está en uso"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Registro exitoso",
		"data": gin.H{
			"id":     userID,
			"nombre": req.Name,
			"email":  email,
		},
	})
}

// Login godoc
// @Summary User login
// @Description Login with email and password, establishes the session cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	email := normalizeEmail(req.Email)

	var user models.User
	err := models.DB.QueryRow(context.Background(),
		`SELECT id, nombre, apellidos, email, COALESCE(telefono,''), COALESCE(direccion,''), password_hash, is_admin, created_at
		 FROM users WHERE email=$1`, email).Scan(
		&user.ID, &user.Name, &user.Surname, &user.Email, &user.Phone,
		&user.Address, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)

	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Credenciales incorrectas"})
		return
	}

	valid, err := utils.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil || !valid {
		c.JSON(401, gin.H{"success": false, "message": "Credenciales incorrectas"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Login failed"})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int((24 * time.Hour).Seconds()), "/", "", false, true)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Sesión iniciada correctamente",
		"data":    models.LoginResponse{Token: token, User: user},
	})
}

// Logout godoc
// @Summary Logout
// @Description Clears the session, including the cart
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /logout [get]
func (ctrl *AuthController) Logout(c *gin.Context) {
	// Logout drops the whole session, cart included.
	if cartID, err := c.Cookie(cartCookie); err == nil && cartID != "" {
		models.Carts.Clear(context.Background(), cartID)
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.SetCookie(cartCookie, "", -1, "/", "", false, true)

	c.JSON(200, gin.H{"success": true, "message": "Sesión cerrada"})
}
