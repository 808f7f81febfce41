package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"clients_directory/internal/models"
	"clients_directory/internal/repositories"
)

// --- Custom Service Errors for Client ---
var (
	ErrClientNotFound = errors.New("client not found")
)

// --- Client DTOs ---

// CreateClientRequest is the full payload for creating a client. Every field
// is mandatory; the profile image travels separately as an ImageUpload.
type CreateClientRequest struct {
	FirstName            string `form:"first_name" validate:"required,min=2,max=50,namescript"`
	LastName             string `form:"last_name" validate:"required,min=2,max=50,namescript"`
	Gender               string `form:"gender" validate:"required,oneof=Female Male"`
	DocumentID           string `form:"document_id" validate:"required,len=11"`
	PhoneNumber          string `form:"phone_number" validate:"required,len=9,startswith=5"`
	LegalAddressCountry  string `form:"legal_address_country" validate:"required,notblank"`
	LegalAddressCity     string `form:"legal_address_city" validate:"required,notblank"`
	LegalAddressLine     string `form:"legal_address_line" validate:"required,notblank"`
	ActualAddressCountry string `form:"actual_address_country" validate:"required,notblank"`
	ActualAddressCity    string `form:"actual_address_city" validate:"required,notblank"`
	ActualAddressLine    string `form:"actual_address_line" validate:"required,notblank"`
}

// UpdateClientRequest is the partial payload for updating a client. A nil
// field leaves the current value untouched; a present field is validated with
// the same rule as on create. Gender and DocumentID are immutable and have no
// patch field at all.
type UpdateClientRequest struct {
	FirstName            *string `form:"first_name" validate:"omitnil,min=2,max=50,namescript"`
	LastName             *string `form:"last_name" validate:"omitnil,min=2,max=50,namescript"`
	PhoneNumber          *string `form:"phone_number" validate:"omitnil,len=9,startswith=5"`
	LegalAddressCountry  *string `form:"legal_address_country" validate:"omitnil,notblank"`
	LegalAddressCity     *string `form:"legal_address_city" validate:"omitnil,notblank"`
	LegalAddressLine     *string `form:"legal_address_line" validate:"omitnil,notblank"`
	ActualAddressCountry *string `form:"actual_address_country" validate:"omitnil,notblank"`
	ActualAddressCity    *string `form:"actual_address_city" validate:"omitnil,notblank"`
	ActualAddressLine    *string `form:"actual_address_line" validate:"omitnil,notblank"`
}

// --- ClientService Interface ---
type ClientService interface {
	CreateClient(req CreateClientRequest, image *ImageUpload) (*models.Client, error)
	GetClientByID(clientID int64) (*models.Client, error)
	GetClients(req models.ClientSearchRequest) (*models.PaginatedClientsResponse, error)
	UpdateClient(clientID int64, req UpdateClientRequest, image *ImageUpload) (*models.Client, error)
	DeleteClient(clientID int64) error
}

// --- clientService Implementation ---
type clientService struct {
	clientRepo  repositories.ClientRepository
	accountRepo repositories.AccountRepository
	images      ImageService
	db          *sql.DB

	// runInTx wraps a multi-entity mutation in one transaction so the
	// cascade commits or rolls back as a unit.
	runInTx func(fn func(tx repositories.SQLExecutor) error) error
}

// NewClientService creates a new instance of ClientService.
func NewClientService(
	clientRepo repositories.ClientRepository,
	accountRepo repositories.AccountRepository,
	images ImageService,
	db *sql.DB,
) ClientService {
	s := &clientService{
		clientRepo:  clientRepo,
		accountRepo: accountRepo,
		images:      images,
		db:          db,
	}
	s.runInTx = s.runInDBTransaction
	return s
}

func (s *clientService) runInDBTransaction(fn func(tx repositories.SQLExecutor) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CreateClient validates the full payload, ingests the optional profile image
// and persists the new client. A rejected image fails the whole operation
// before anything is written to the record store.
func (s *clientService) CreateClient(req CreateClientRequest, image *ImageUpload) (*models.Client, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	imageURL, err := s.images.IngestProfileImage(image)
	if err != nil {
		return nil, err
	}

	client := &models.Client{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Gender:               models.Gender(req.Gender),
		DocumentID:           req.DocumentID,
		PhoneNumber:          req.PhoneNumber,
		LegalAddressCountry:  req.LegalAddressCountry,
		LegalAddressCity:     req.LegalAddressCity,
		LegalAddressLine:     req.LegalAddressLine,
		ActualAddressCountry: req.ActualAddressCountry,
		ActualAddressCity:    req.ActualAddressCity,
		ActualAddressLine:    req.ActualAddressLine,
		CreatedAt:            time.Now().UTC(),
		Accounts:             []models.Account{},
	}
	if imageURL != "" {
		client.ProfileImageURL = &imageURL
	}

	if _, err := s.clientRepo.CreateClient(s.db, client); err != nil {
		return nil, fmt.Errorf("failed to create client in repository: %w", err)
	}
	return client, nil
}

// GetClientByID fetches a client together with its owned accounts.
func (s *clientService) GetClientByID(clientID int64) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}

	accounts, err := s.accountRepo.GetAccountsByClientID(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts for client ID %d: %w", clientID, err)
	}
	client.Accounts = accounts
	return client, nil
}

// GetClients runs the search request and wraps the page with its total count.
func (s *clientService) GetClients(req models.ClientSearchRequest) (*models.PaginatedClientsResponse, error) {
	clients, totalCount, err := s.clientRepo.GetClients(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	if clients == nil {
		clients = []models.Client{}
	}
	return models.NewPaginatedClientsResponse(clients, totalCount, req.Page, req.PageSize), nil
}

// UpdateClient applies a partial update: only non-nil patch fields overwrite
// the stored record, and everything persists as one unit. A rejected image
// aborts the update with no fields written.
func (s *clientService) UpdateClient(clientID int64, req UpdateClientRequest, image *ImageUpload) (*models.Client, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client for update: %w", err)
	}

	imageURL, err := s.images.IngestProfileImage(image)
	if err != nil {
		return nil, err
	}

	applyClientPatch(client, req)
	if imageURL != "" {
		client.ProfileImageURL = &imageURL
	}

	if err := s.clientRepo.UpdateClient(s.db, client); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client in repository: %w", err)
	}
	return s.GetClientByID(clientID)
}

// applyClientPatch merges the provided patch fields onto the stored client.
func applyClientPatch(client *models.Client, req UpdateClientRequest) {
	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		client.PhoneNumber = *req.PhoneNumber
	}
	if req.LegalAddressCountry != nil {
		client.LegalAddressCountry = *req.LegalAddressCountry
	}
	if req.LegalAddressCity != nil {
		client.LegalAddressCity = *req.LegalAddressCity
	}
	if req.LegalAddressLine != nil {
		client.LegalAddressLine = *req.LegalAddressLine
	}
	if req.ActualAddressCountry != nil {
		client.ActualAddressCountry = *req.ActualAddressCountry
	}
	if req.ActualAddressCity != nil {
		client.ActualAddressCity = *req.ActualAddressCity
	}
	if req.ActualAddressLine != nil {
		client.ActualAddressLine = *req.ActualAddressLine
	}
}

// DeleteClient removes a client and every account it owns in one transaction.
func (s *clientService) DeleteClient(clientID int64) error {
	if _, err := s.clientRepo.GetClientByID(clientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to find client for deletion: %w", err)
	}

	// Children first, then the parent, inside one transaction boundary.
	err := s.runInTx(func(tx repositories.SQLExecutor) error {
		if err := s.accountRepo.DeleteAccountsByClientID(tx, clientID); err != nil {
			return fmt.Errorf("failed to delete accounts for client ID %d: %w", clientID, err)
		}
		if err := s.clientRepo.DeleteClient(tx, clientID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrClientNotFound
			}
			return fmt.Errorf("failed to delete client ID %d: %w", clientID, err)
		}
		return nil
	})
	return err
}
