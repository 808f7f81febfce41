package handlers

import (
	"errors"
	"net/http"

	"clients_directory/internal/models"
	"clients_directory/internal/services"
	"clients_directory/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AccountHandler holds the account service.
type AccountHandler struct {
	accountService services.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(as services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: as}
}

// CreateAccount handles opening a new account under a client.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateAccount: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request payload.", err.Error()))
		return
	}

	account, err := h.accountService.CreateAccount(clientID, req)
	if err != nil {
		utils.LogError(err, "CreateAccount: Error from accountService.CreateAccount")
		respondAccountError(c, err, "Failed to create account.")
		return
	}
	c.JSON(http.StatusCreated, account)
}

// GetClientAccounts handles listing every account owned by a client.
func (h *AccountHandler) GetClientAccounts(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	accounts, err := h.accountService.GetAccountsByClient(clientID)
	if err != nil {
		utils.LogError(err, "GetClientAccounts: Error from accountService.GetAccountsByClient")
		respondAccountError(c, err, "Failed to fetch accounts.")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// CloseAccount handles the one-way Active to Closed transition.
func (h *AccountHandler) CloseAccount(c *gin.Context) {
	accountID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	account, err := h.accountService.CloseAccount(accountID)
	if err != nil {
		utils.LogError(err, "CloseAccount: Error from accountService.CloseAccount")
		respondAccountError(c, err, "Failed to close account.")
		return
	}
	c.JSON(http.StatusOK, account)
}

// respondAccountError maps account service errors onto API error responses.
func respondAccountError(c *gin.Context, err error, fallback string) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed.", vErr.Error()).
			WithFields(vErr.Violations))
	case errors.Is(err, services.ErrClientNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Client not found.", err.Error()))
	case errors.Is(err, services.ErrAccountNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Account not found.", err.Error()))
	case errors.Is(err, services.ErrNoAccountsFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "No accounts found.", err.Error()))
	case errors.Is(err, models.ErrAccountAlreadyClosed):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Account is already closed.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, fallback, "Internal error"))
	}
}
