package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	config "github.com/hws-kobayashi-ukyo/coffee/configs"
	"github.com/hws-kobayashi-ukyo/coffee/internal/db"
	"github.com/hws-kobayashi-ukyo/coffee/internal/handlers"
)

func main() {

	cfg := config.LoadServerConfig()

	db.Init(cfg.DBPath)

	if err := db.Seed(db.DB); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) { c.JSON(200, gin.H{"message": "Coffee Shop API"}) })

	api := r.Group("/api")
	{
		api.GET("/products", handlers.ListProducts)
		api.GET("/products/:id", handlers.GetProduct)
		api.POST("/products", handlers.CreateProduct)
		api.PUT("/products/:id", handlers.UpdateProduct)
		api.DELETE("/products/:id", handlers.DeleteProduct)

		api.POST("/orders", handlers.CreateOrder)
		api.GET("/orders", handlers.ListOrders)
	}

	r.Run(":" + cfg.Port)
}
