package routes

import (
	"frutti-market/controllers"
	"frutti-market/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := &controllers.AuthController{}
	catalogCtrl := &controllers.CatalogController{}
	cartCtrl := &controllers.CartController{}
	checkoutCtrl := &controllers.CheckoutController{}
	profileCtrl := &controllers.ProfileController{}
	adminCtrl := &controllers.AdminController{}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/", catalogCtrl.Home)
	router.GET("/buscar", catalogCtrl.Search)
	router.GET("/categoria/:nombre", catalogCtrl.Category)
	router.GET("/producto/:id", catalogCtrl.ProductByID)

	router.POST("/register", authCtrl.Register)
	router.POST("/login", authCtrl.Login)
	router.GET("/logout", authCtrl.Logout)

	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/add", cartCtrl.AddToCart)
	router.GET("/cart/remove/:id", cartCtrl.RemoveFromCart)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/perfil", profileCtrl.GetProfile)
		auth.POST("/perfil", profileCtrl.UpdateProfile)
		auth.POST("/checkout", checkoutCtrl.Checkout)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("", adminCtrl.Dashboard)
		admin.GET("/products", adminCtrl.GetProducts)
		admin.POST("/products", adminCtrl.CreateProduct)
		admin.GET("/orders/:id", adminCtrl.GetOrderByID)
	}

	router.Static("/uploads", "./uploads")
}
