package routes

import (
	"net/http"
	"time"

	"github.com/BakhatBug/Keto-Slim/controllers"
	"github.com/BakhatBug/Keto-Slim/middlewares"
	"github.com/BakhatBug/Keto-Slim/models"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Forms    *controllers.FormController
	Results  *controllers.ResultController
	Products *controllers.ProductController
	Orders   *controllers.OrderController
	Realtime *controllers.RealtimeController
}

func SetupRouter(c Controllers) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/register", middlewares.AuthRateLimiter(), c.Auth.Register)
		auth.POST("/login", middlewares.AuthRateLimiter(), c.Auth.Login)
		auth.GET("/me", middlewares.AuthRequired(), c.Auth.Me)
	}

	forms := api.Group("/forms")
	{
		forms.POST("", middlewares.OptionalAuth(), c.Forms.CreateForm)
		forms.GET("/:id", c.Forms.GetFormByID)
		forms.GET("/user/me", middlewares.AuthRequired(), c.Forms.GetMyForms)
		forms.GET("", middlewares.AuthRequired(), middlewares.RequireRole(models.RoleAdmin), c.Forms.GetAllForms)
		forms.DELETE("/:id", middlewares.AuthRequired(), middlewares.RequireRole(models.RoleAdmin), c.Forms.DeleteForm)
	}

	results := api.Group("/results")
	{
		results.POST("/generate", c.Results.GenerateResult)
		results.GET("/:id", c.Results.GetResultByID)
		results.GET("/form/:formId", c.Results.GetResultByFormID)
		results.GET("/user/me", middlewares.AuthRequired(), c.Results.GetMyResults)
		results.DELETE("/:id", middlewares.AuthRequired(), middlewares.RequireRole(models.RoleAdmin), c.Results.DeleteResult)
	}

	products := api.Group("/products")
	{
		products.GET("", c.Products.GetProducts)
		products.GET("/:id", c.Products.GetProductByID)

		admin := products.Group("", middlewares.AuthRequired(), middlewares.RequireRole(models.RoleAdmin))
		admin.POST("", c.Products.CreateProduct)
		admin.PUT("/:id", c.Products.UpdateProduct)
		admin.DELETE("/:id", c.Products.DeleteProduct)
		admin.PATCH("/:id/stock", c.Products.UpdateStock)
		admin.POST("/:id/image", c.Products.UploadImage)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", middlewares.OptionalAuth(), c.Orders.CreateOrder)
		orders.GET("/user/me", middlewares.AuthRequired(), c.Orders.GetMyOrders)
		orders.GET("/number/:orderNumber", c.Orders.GetOrderByNumber)
		orders.GET("/:id", middlewares.AuthRequired(), c.Orders.GetOrderByID)
		orders.GET("", middlewares.AuthRequired(), middlewares.RequireRole(models.RoleAdmin), c.Orders.GetAllOrders)
		orders.PATCH("/:id/status", middlewares.AuthRequired(), middlewares.RequireRole(models.RoleAdmin), c.Orders.UpdateOrderStatus)
		orders.POST("/:id/cancel", middlewares.AuthRequired(), c.Orders.CancelOrder)
		orders.POST("/:id/payment", middlewares.PaymentRateLimiter(), middlewares.AuthRequired(), c.Orders.ProcessPayment)
		orders.GET("/ws", middlewares.AuthRequired(), middlewares.RequireRole(models.RoleAdmin), c.Realtime.OrdersWS)
	}

	return r
}
