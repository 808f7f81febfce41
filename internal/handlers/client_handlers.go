package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"clients_directory/internal/models"
	"clients_directory/internal/services"
	"clients_directory/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ClientHandler holds the client service.
type ClientHandler struct {
	clientService services.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(cs services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: cs}
}

// profileImageFromForm extracts the optional profile_image multipart file.
// A missing file is not an error; it means no image was supplied.
func profileImageFromForm(c *gin.Context) (*services.ImageUpload, error) {
	fileHeader, err := c.FormFile("profile_image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &services.ImageUpload{
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Filename:    fileHeader.Filename,
	}, nil
}

// CreateClient handles the creation of a new client from a multipart form.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req services.CreateClientRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.LogError(err, "CreateClient: Failed to bind form")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request payload.", err.Error()))
		return
	}

	image, err := profileImageFromForm(c)
	if err != nil {
		utils.LogError(err, "CreateClient: Failed to read profile image")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Could not read profile image.", err.Error()))
		return
	}

	client, err := h.clientService.CreateClient(req, image)
	if err != nil {
		utils.LogError(err, "CreateClient: Error from clientService.CreateClient")
		respondClientError(c, err, "Failed to create client.")
		return
	}
	c.JSON(http.StatusCreated, client)
}

// GetClients handles the dynamic client search with filters, sorting and paging.
func (h *ClientHandler) GetClients(c *gin.Context) {
	var req models.ClientSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid search parameters.", err.Error()))
		return
	}

	result, err := h.clientService.GetClients(req)
	if err != nil {
		utils.LogError(err, "GetClients: Error from clientService.GetClients")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch clients.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetClientByID handles fetching a single client, including owned accounts.
func (h *ClientHandler) GetClientByID(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	client, err := h.clientService.GetClientByID(clientID)
	if err != nil {
		utils.LogError(err, "GetClientByID: Error from clientService.GetClientByID")
		respondClientError(c, err, "Failed to fetch client.")
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient handles a partial update of a client from a multipart form.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateClientRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.LogError(err, "UpdateClient: Failed to bind form")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid request payload.", err.Error()))
		return
	}

	image, err := profileImageFromForm(c)
	if err != nil {
		utils.LogError(err, "UpdateClient: Failed to read profile image")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Could not read profile image.", err.Error()))
		return
	}

	client, err := h.clientService.UpdateClient(clientID, req, image)
	if err != nil {
		utils.LogError(err, "UpdateClient: Error from clientService.UpdateClient")
		respondClientError(c, err, "Failed to update client.")
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient handles deleting a client together with its accounts.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(clientID); err != nil {
		utils.LogError(err, "DeleteClient: Error from clientService.DeleteClient")
		respondClientError(c, err, "Failed to delete client.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

// parseIDParam reads a numeric path parameter, responding with 400 on failure.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid ID format.", err.Error()))
		return 0, false
	}
	return id, true
}

// respondClientError maps client service errors onto API error responses.
func respondClientError(c *gin.Context, err error, fallback string) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed.", vErr.Error()).
			WithFields(vErr.Violations))
	case errors.Is(err, services.ErrClientNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Client not found.", err.Error()))
	case errors.Is(err, services.ErrUnsupportedFileType):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeUnsupportedMedia, "Unsupported file type.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, fallback, "Internal error"))
	}
}
