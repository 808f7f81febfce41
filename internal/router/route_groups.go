package router

import (
	"clients_directory/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClientRoutes registers the client resource endpoints.
func SetupClientRoutes(group *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	clients := group.Group("/clients")
	{
		clients.GET("", clientHandler.GetClients)
		clients.POST("", clientHandler.CreateClient)
		clients.GET("/:id", clientHandler.GetClientByID)
		clients.PATCH("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}
}

// SetupAccountRoutes registers the account sub-resource endpoints. Accounts
// are created and listed through their owning client; closing addresses the
// account directly.
func SetupAccountRoutes(group *gin.RouterGroup, accountHandler *handlers.AccountHandler) {
	clients := group.Group("/clients")
	{
		clients.POST("/:id/accounts", accountHandler.CreateAccount)
		clients.GET("/:id/accounts", accountHandler.GetClientAccounts)
	}
	accounts := group.Group("/accounts")
	{
		accounts.POST("/:id/close", accountHandler.CloseAccount)
	}
}
