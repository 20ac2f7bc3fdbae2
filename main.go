package main

import (
	"log"
	"os"

	"street-network-server/handlers"
	"street-network-server/services"
	"street-network-server/streetgraph"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default environment variables")
	}

	dataDir := getenv("DATA_DIR", "data")

	log.Printf("Loading street networks from %s...", dataDir)
	datasets, err := streetgraph.LoadDatasetsFromDirectory(dataDir)
	if err != nil {
		log.Fatalf("Failed to load street networks: %v", err)
	}
	for name, ds := range datasets {
		log.Printf("Loaded network %s: %d nodes, %d edges", name, len(ds.Nodes), len(ds.Edges))
	}

	planner := services.NewPlannerService(os.Getenv("PLANNER_URL"))
	handler := handlers.NewNetworkHandler(datasets, services.NewSamplingService(), planner)

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"*"}
	r.Use(cors.New(config))

	handler.RegisterRoutes(r)

	port := getenv("PORT", "8080")
	log.Printf("Street network server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
