package routes

import (
	"vastra_back_end/internal/handlers"
	"vastra_back_end/internal/handlers/admin"
	paymenthandlers "vastra_back_end/internal/handlers/payment"
	"vastra_back_end/internal/handlers/product"
	"vastra_back_end/internal/handlers/user"
	"vastra_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// --- Auth clients ---
	api.POST("/auth/signup", user.Signup)
	api.POST("/auth/login", middleware.LoginRateLimit(), user.Login)
	api.GET("/auth/:provider", user.BeginAuth)
	api.GET("/auth/:provider/callback", user.CallbackAuth)

	// --- Catalogue (public) ---
	api.GET("/products", product.GetAllProducts)
	api.GET("/products/search", product.SearchProducts)
	api.GET("/products/:id", product.GetProduct)

	// --- Panier (session requise) ---
	cart := api.Group("/cart", middleware.AuthRequired())
	{
		cart.GET("", user.GetCart)
		cart.POST("", user.AddToCart)
		cart.PUT("", user.UpdateCartItem)
		cart.DELETE("", user.RemoveFromCart)
		cart.DELETE("/clear", user.ClearCart)
		cart.GET("/ws", user.CartWebSocket)
	}
	api.GET("/checkout/quote", middleware.AuthRequired(), user.CheckoutQuote)

	// --- Paiement ---
	api.POST("/razorpay/create-order", middleware.AuthRequired(), paymenthandlers.CreateOrder)

	// --- Administration ---
	api.POST("/admin/login", admin.Login)
	api.GET("/admin/check-auth", middleware.AdminAuthRequired(), admin.CheckAuth)

	adminProducts := api.Group("/products", middleware.AdminAuthRequired())
	{
		adminProducts.POST("", product.CreateProduct)
		adminProducts.PUT("/:id", product.UpdateProduct)
		adminProducts.DELETE("/:id", product.DeleteProduct)
	}

	// --- Contact ---
	api.POST("/contact", handlers.Contact)
}
