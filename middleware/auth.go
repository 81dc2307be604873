package middleware

import (
	"context"
	"net/http"
	"strings"

	"frutti-market/models"
	"frutti-market/utils"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session"

// tokenFromRequest accepts the Authorization Bearer header or the
// session cookie set at login. The cookie is what gives the browser
// frontend its session semantics.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Debe iniciar sesión",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired session",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}

// AdminMiddleware requires the admin flag twice over: the session claim
// must carry it (a session issued before promotion stays non-admin until
// the user logs in again) and the live user row must still have it (a
// demoted admin loses access immediately, stale sessions notwithstanding).
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin := c.GetBool("is_admin")
		if !isAdmin {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Acceso denegado",
			})
			c.Abort()
			return
		}

		userID := c.GetInt("user_id")

		var liveAdmin bool
		err := models.DB.QueryRow(context.Background(),
			"SELECT is_admin FROM users WHERE id=$1", userID).Scan(&liveAdmin)
		if err != nil || !liveAdmin {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Acceso denegado",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
