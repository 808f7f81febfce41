package router

import (
	"database/sql"

	"clients_directory/internal/handlers"
	"clients_directory/internal/repositories"
	"clients_directory/internal/services"
	"clients_directory/internal/storage"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, uploadsDir string) {
	// Initialize Repositories
	clientRepo := repositories.NewClientRepository(db)
	accountRepo := repositories.NewAccountRepository(db)

	// Initialize Services
	blobStore := storage.NewDiskBlobStore(uploadsDir, "/profile-images")
	imageService := services.NewImageService(blobStore)
	clientService := services.NewClientService(clientRepo, accountRepo, imageService, db)
	accountService := services.NewAccountService(accountRepo, clientRepo, db)

	// Initialize Handlers
	clientHandler := handlers.NewClientHandler(clientService)
	accountHandler := handlers.NewAccountHandler(accountService)

	apiV1 := engine.Group("/api/v1")
	SetupClientRoutes(apiV1, clientHandler)
	SetupAccountRoutes(apiV1, accountHandler)

	// Stored profile images are served directly from the uploads directory.
	engine.Static("/profile-images", uploadsDir)
}
