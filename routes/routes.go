package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopbay/backend/controllers"
	"github.com/shopbay/backend/middleware"
)

// Register wires every route. Authenticated routes read the bearer token
// from the raw `token` header via RequireAuth.
func Register(
	r *gin.Engine,
	auth *controllers.AuthController,
	products *controllers.ProductController,
	carts *controllers.CartController,
	resolver middleware.UserResolver,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Public routes
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.GET("/products", products.GetProducts)
	r.GET("/product/search/:keyword", products.SearchProducts)

	// Authenticated routes
	protected := middleware.RequireAuth(resolver)
	r.POST("/add-product", protected, products.CreateProduct)
	r.GET("/product/:id", protected, products.GetProductByID)
	r.PATCH("/product/edit/:id", protected, products.UpdateProduct)
	r.DELETE("/product/delete/:id", protected, products.DeleteProduct)
	r.GET("/cart", protected, carts.GetCart)
	r.POST("/cart/add", protected, carts.AddToCart)
	r.DELETE("/cart/product/delete", protected, carts.RemoveFromCart)
}
