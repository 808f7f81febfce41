package services

import (
	"database/sql"
	"errors"
	"fmt"

	"clients_directory/internal/models"
	"clients_directory/internal/repositories"
)

// --- Custom Service Errors for Account ---
var (
	ErrAccountNotFound = errors.New("account not found")
	// ErrNoAccountsFound is returned when a client owns zero accounts. The
	// listing operation does not distinguish this from an absent client.
	ErrNoAccountsFound = errors.New("no accounts found for client")
)

// --- Account DTOs ---

// CreateAccountRequest is the payload for opening an account under a client.
type CreateAccountRequest struct {
	Type     string `json:"type" validate:"required,oneof=Current Savings Accrual"`
	Currency string `json:"currency" validate:"required,oneof=GEL USD EUR"`
}

// --- AccountService Interface ---
type AccountService interface {
	CreateAccount(clientID int64, req CreateAccountRequest) (*models.Account, error)
	GetAccountsByClient(clientID int64) ([]models.Account, error)
	CloseAccount(accountID int64) (*models.Account, error)
}

// --- accountService Implementation ---
type accountService struct {
	accountRepo repositories.AccountRepository
	clientRepo  repositories.ClientRepository
	db          *sql.DB
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(
	accountRepo repositories.AccountRepository,
	clientRepo repositories.ClientRepository,
	db *sql.DB,
) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		clientRepo:  clientRepo,
		db:          db,
	}
}

// CreateAccount opens a new Active account under an existing client.
func (s *accountService) CreateAccount(clientID int64, req CreateAccountRequest) (*models.Account, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.clientRepo.GetClientByID(clientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client for account creation: %w", err)
	}

	account := &models.Account{
		ClientID: clientID,
		Type:     models.AccountType(req.Type),
		Currency: models.Currency(req.Currency),
		Status:   models.AccountStatusActive,
	}
	if _, err := s.accountRepo.CreateAccount(s.db, account); err != nil {
		return nil, fmt.Errorf("failed to create account in repository: %w", err)
	}
	return account, nil
}

// GetAccountsByClient lists every account owned by the client.
func (s *accountService) GetAccountsByClient(clientID int64) ([]models.Account, error) {
	accounts, err := s.accountRepo.GetAccountsByClientID(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts for client ID %d: %w", clientID, err)
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccountsFound
	}
	return accounts, nil
}

// CloseAccount transitions an account from Active to Closed. The transition is
// one-way; closing an already closed account fails rather than no-ops.
func (s *accountService) CloseAccount(accountID int64) (*models.Account, error) {
	account, err := s.accountRepo.GetAccountByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account for closing: %w", err)
	}

	if err := account.Close(); err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdateAccountStatus(s.db, accountID, account.Status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to persist closed status for account ID %d: %w", accountID, err)
	}
	return account, nil
}
