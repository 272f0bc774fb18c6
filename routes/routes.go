package routes

import (
	"net/http"

	"github.com/Dhanushvel123/PetShop-Server/controllers"
	"github.com/gin-gonic/gin"
)

// Controllers bundles everything Register wires into the engine.
type Controllers struct {
	Auth          *controllers.AuthController
	PetFoods      *controllers.ProductController
	Accessories   *controllers.ProductController
	FoodCart      *controllers.CartController
	AccessoryCart *controllers.CartController
	Orders        *controllers.OrderController
}

// Register wires the full route table. requireAuth guards the routes that
// need a bearer token; the catalog mutation and admin list routes are left
// open to match the contract the admin dashboard was built against.
func Register(r *gin.Engine, c Controllers, requireAuth, rateLimit gin.HandlerFunc) {
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Auth
	r.POST("/register", rateLimit, c.Auth.Register)
	r.POST("/login", rateLimit, c.Auth.Login)
	r.POST("/admin-login", rateLimit, c.Auth.AdminLogin)

	// Profile
	r.GET("/profile", requireAuth, c.Auth.Profile)
	r.PUT("/profile", requireAuth, c.Auth.UpdateProfile)
	r.PUT("/profile/credentials", requireAuth, c.Auth.UpdateCredentials)

	// User administration
	r.GET("/users", c.Auth.ListUsers)
	r.PUT("/users/:id/role", requireAuth, c.Auth.SetUserRole)

	registerCatalog(r.Group("/petfoods"), c.PetFoods, c.FoodCart, requireAuth)
	registerCatalog(r.Group("/accessories"), c.Accessories, c.AccessoryCart, requireAuth)

	// Orders
	orders := r.Group("/orders")
	orders.POST("/checkout", requireAuth, c.Orders.Checkout)
	orders.GET("", requireAuth, c.Orders.ListOwn)
	orders.GET("/admin", c.Orders.ListAll)
	orders.PUT("/admin/:id", requireAuth, c.Orders.SetStatus)
	orders.PUT("/:id", requireAuth, c.Orders.Edit)
	orders.DELETE("/:id", requireAuth, c.Orders.Cancel)
}

func registerCatalog(g *gin.RouterGroup, products *controllers.ProductController, cart *controllers.CartController, requireAuth gin.HandlerFunc) {
	g.GET("", products.List)
	g.GET("/admin", products.List)
	g.POST("", products.Create)
	g.PUT("/:id", products.SetStock)
	g.DELETE("/:id", products.Delete)
	g.POST("/favorite/:id", requireAuth, products.ToggleFavorite)

	g.GET("/cart", requireAuth, cart.List)
	g.POST("/cart", requireAuth, cart.AddItem)
	g.PUT("/cart/:id", requireAuth, cart.UpdateQuantity)
	g.DELETE("/cart/:id", requireAuth, cart.RemoveItem)
}
