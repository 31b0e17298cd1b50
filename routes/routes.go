package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/controllers"
	_ "github.com/kendall-kelly/tailorshop-api/docs"
	"github.com/kendall-kelly/tailorshop-api/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Options configures the router.
type Options struct {
	AllowedOrigins []string
	Logger         *zap.Logger
}

// New builds the gin engine with middleware, Swagger UI and every API route.
// authGate guards everything but health checks, register and login.
func New(h *controllers.Handler, authGate gin.HandlerFunc, opts Options) (*gin.Engine, error) {
	if err := controllers.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Recovery(opts.Logger))
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	Register(router.Group("/api/v1"), h, authGate)
	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// Register mounts the API on v1.
func Register(v1 *gin.RouterGroup, h *controllers.Handler, authGate gin.HandlerFunc) {
	v1.GET("/health", h.Health)
	v1.GET("/database/status", h.DatabaseStatus)
	v1.POST("/auth/register", h.Register)
	v1.POST("/auth/login", h.Login)

	api := v1.Group("")
	api.Use(authGate)
	{
		api.POST("/auth/logout", h.Logout)
		api.GET("/auth/me", h.Me)

		// Customers
		api.GET("/customers", h.ListCustomers)
		api.GET("/customers/search", h.SearchCustomers)
		api.POST("/customers/merge", h.MergeCustomers)
		api.POST("/customer", h.CreateCustomer)
		api.GET("/customer/:id", h.GetCustomer)
		api.PUT("/customer/:id", h.UpdateCustomer)
		api.DELETE("/customer/:id", h.DeleteCustomer)
		api.GET("/customer/:id/orders", h.ListCustomerOrders)
		api.GET("/customer/:id/measurements/:garment", h.ListCustomerMeasurements)

		// Orders
		api.GET("/orders", h.ListOrders)
		api.POST("/order", h.CreateOrder)
		api.GET("/order/:orderNo", h.GetOrder)
		api.PUT("/order/:orderNo", h.UpdateOrder)
		api.DELETE("/order/:orderNo", h.DeleteOrder)
		api.GET("/order/:orderNo/items", h.ListOrderItems)
		api.GET("/order/:orderNo/measurements/:garment", h.ListOrderMeasurements)
		api.GET("/order/:orderNo/photos", h.ListPhotos)
		api.POST("/order/:orderNo/photos/upload-url", h.RequestPhotoUpload)
		api.DELETE("/order/:orderNo/photos/:photoId", h.DeletePhoto)

		// Measurements
		api.POST("/measurement/:garment", h.CreateMeasurement)

		// Items
		api.GET("/items", h.ListItems)
		api.POST("/items", h.CreateItems)
		api.POST("/item/:garment", h.CreateItem)
		api.GET("/item/:id", h.GetItem)
		api.PUT("/item/:id", h.UpdateItem)
		api.DELETE("/item/:id", h.DeleteItem)

		// Fabrics
		api.GET("/fabrics", h.ListFabrics)
		api.POST("/fabrics/ensure", h.EnsureFabric)
		api.POST("/fabric", h.CreateFabric)
		api.GET("/fabric/:fabricId", h.GetFabric)
		api.PUT("/fabric/:fabricId", h.UpdateFabric)
		api.DELETE("/fabric/:fabricId", h.DeleteFabric)
		api.POST("/fabric/:fabricId/upload-image", h.UploadFabricImage)
		api.GET("/fabric/:fabricId/image", h.GetFabricImage)
		api.DELETE("/fabric/:fabricId/image", h.DeleteFabricImage)

		// Inventory
		api.GET("/suppliers", h.ListSuppliers)
		api.POST("/supplier", h.CreateSupplier)
		api.GET("/supplier/:id", h.GetSupplier)
		api.PUT("/supplier/:id", h.UpdateSupplier)
		api.DELETE("/supplier/:id", h.DeleteSupplier)

		api.GET("/fabric-orders", h.ListFabricOrders)
		api.GET("/fabric-orders/code/:code", h.ListFabricOrdersByCode)
		api.POST("/fabric-order", h.CreateFabricOrder)
		api.GET("/fabric-order/:id", h.GetFabricOrder)
		api.PUT("/fabric-order/:id", h.UpdateFabricOrder)
		api.DELETE("/fabric-order/:id", h.DeleteFabricOrder)

		api.GET("/raw-materials-orders", h.ListRawMaterialsOrders)
		api.POST("/raw-materials-order", h.CreateRawMaterialsOrder)
		api.GET("/raw-materials-order/:id", h.GetRawMaterialsOrder)
		api.PUT("/raw-materials-order/:id", h.UpdateRawMaterialsOrder)
		api.DELETE("/raw-materials-order/:id", h.DeleteRawMaterialsOrder)
	}
}
