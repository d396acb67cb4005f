package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/dh139/cafef/invoice"
	"github.com/dh139/cafef/routes"
	"github.com/dh139/cafef/store"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Println("✅ Starting café billing server...")

	// Load environment variables
	_ = godotenv.Load()

	port := getEnv("PORT", "8080")
	baseURL := getEnv("PUBLIC_BASE_URL", "http://localhost:"+port)
	invoicesDir := getEnv("INVOICES_DIR", "invoices")
	imagesDir := getEnv("IMAGES_DIR", "public/images")
	uploadsDir := getEnv("UPLOADS_DIR", "uploads")
	templatePath := getEnv("INVOICE_TEMPLATE", "templates/invoice-template.html")

	// Ensure artifact directories exist before anything is written
	for _, dir := range []string{invoicesDir, imagesDir, uploadsDir} {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			logrus.Fatalf("❌ Failed to create directory %s: %v", dir, err)
		}
	}

	// Gin setup
	r := gin.Default()
	r.MaxMultipartMemory = 32 << 20 // 32MB

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve stored artifacts
	r.Static("/bills", invoicesDir)
	r.Static("/images", imagesDir)
	r.Static("/uploads", uploadsDir)

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog:       store.NewCatalog(),
		Renderer:      invoice.NewRenderer(templatePath, invoice.NewChromeConverter()),
		Invoices:      invoice.NewStore(invoicesDir, baseURL),
		ImagesDir:     imagesDir,
		UploadsDir:    uploadsDir,
		PublicBaseURL: baseURL,
	})

	// Start server
	logrus.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("❌ Failed to start server: %v", err)
	}
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
