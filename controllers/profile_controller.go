package controllers

import (
	"context"
	"strings"

	"frutti-market/models"

	"github.com/gin-gonic/gin"
)

type ProfileController struct{}

// GetProfile godoc
// @Summary Get profile
// @Description Get the current user's profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /perfil [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var user models.User
	err := models.DB.QueryRow(context.Background(),
		`SELECT id, nombre, apellidos, email, COALESCE(telefono,''), COALESCE(direccion,''), is_admin, created_at
		 FROM users WHERE id=$1`, userID).Scan(
		&user.ID, &user.Name, &user.Surname, &user.Email, &user.Phone,
		&user.Address, &user.IsAdmin, &user.CreatedAt)

	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Usuario no encontrado"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Profile retrieved", "data": user})
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Update address and phone
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Update Request"
// @Success 200 {object} models.Response
// @Router /perfil [post]
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	_, err := models.DB.Exec(context.Background(),
		"UPDATE users SET direccion=$1, telefono=$2 WHERE id=$3",
		strings.TrimSpace(req.Address), strings.TrimSpace(req.Phone), userID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update profile"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Perfil actualizado"})
}
