package http

import (
	"github.com/HamzaHajMtir1/Elite-Shop/internal/service"
	"github.com/HamzaHajMtir1/Elite-Shop/internal/token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Services struct {
	Catalog  service.CatalogService
	Cart     service.CartService
	Checkout service.CheckoutService
	Orders   service.OrderService
	Identity service.IdentityService
	Auth     service.Authenticator
}

func Router(svcs Services, verifier *token.HSVerifier, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	catalogHandler := NewCatalogHandler(svcs.Catalog, log)
	cartHandler := NewCartHandler(svcs.Cart, log)
	checkoutHandler := NewCheckoutHandler(svcs.Checkout, log)
	orderHandler := NewOrderHandler(svcs.Orders, log)
	authHandler := NewAuthHandler(svcs.Auth, svcs.Identity, log)

	api := r.Group("/api/v1")
	api.Use(Identity(verifier, log))

	api.POST("/auth/login", authHandler.Login)

	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/products", catalogHandler.ListProducts)
	api.GET("/products/featured", catalogHandler.FeaturedProducts)
	api.GET("/products/newest", catalogHandler.NewestProducts)
	api.GET("/products/:id", catalogHandler.GetProduct)

	cart := api.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCount)

		// mutations establish a session identity for guests
		mut := cart.Group("")
		mut.Use(EnsureIdentity(svcs.Identity))
		mut.POST("/items", cartHandler.AddItem)
		mut.PATCH("/items/:id", cartHandler.UpdateItem)
		mut.DELETE("/items/:id", cartHandler.RemoveItem)
	}

	api.POST("/checkout", EnsureIdentity(svcs.Identity), checkoutHandler.Checkout)

	orders := api.Group("/orders")
	orders.Use(RequireAuth())
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/number/:number", orderHandler.GetOrderByNumber)
		orders.POST("/:id/cancel", orderHandler.CancelOrder)
		orders.PATCH("/:id/status", RequireAdmin(), orderHandler.UpdateStatus)
	}

	return r
}
