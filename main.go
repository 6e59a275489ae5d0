package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/kevin997/Olku-Olkanda/cart"
	"github.com/kevin997/Olku-Olkanda/catalog"
	"github.com/kevin997/Olku-Olkanda/routes"
	"github.com/kevin997/Olku-Olkanda/whatsapp"
)

func main() {
	log.Println("✅ Starting Olkunda storefront API...")

	// Load environment variables
	_ = godotenv.Load()

	// Static catalog + volatile cart sessions; nothing is persisted
	cat := catalog.Default()
	store := cart.NewStore()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, cat, store, loadConfig())

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// loadConfig reads the deployment-specific values, with defaults matching the
// production storefront.
func loadConfig() routes.Config {
	phone := os.Getenv("WHATSAPP_PHONE")
	if phone == "" {
		phone = whatsapp.DefaultPhone
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "https://olkunda.com"
	}

	return routes.Config{
		WhatsAppPhone: phone,
		BaseURL:       baseURL,
	}
}
