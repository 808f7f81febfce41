package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"clients_directory/internal/models"
)

// AccountRepository defines the interface for account-related database operations.
type AccountRepository interface {
	CreateAccount(executor SQLExecutor, account *models.Account) (int64, error)
	GetAccountByID(id int64) (*models.Account, error)
	GetAccountsByClientID(clientID int64) ([]models.Account, error)
	UpdateAccountStatus(executor SQLExecutor, id int64, status models.AccountStatus) error
	DeleteAccountsByClientID(executor SQLExecutor, clientID int64) error
}

type accountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new instance of AccountRepository.
func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepository{db: db}
}

// CreateAccount inserts a new account owned by an existing client.
func (r *accountRepository) CreateAccount(executor SQLExecutor, account *models.Account) (int64, error) {
	query := `INSERT INTO accounts (client_id, type, currency, status)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	err := executor.QueryRow(query,
		account.ClientID, account.Type, account.Currency, account.Status,
	).Scan(&account.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating account for client ID %d: %v", ErrDatabaseError, account.ClientID, err)
	}
	return account.ID, nil
}

// GetAccountByID retrieves an account by its ID.
func (r *accountRepository) GetAccountByID(id int64) (*models.Account, error) {
	account := &models.Account{}
	query := `SELECT id, client_id, type, currency, status FROM accounts WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&account.ID, &account.ClientID, &account.Type, &account.Currency, &account.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting account by ID %d: %v", ErrDatabaseError, id, err)
	}
	return account, nil
}

// GetAccountsByClientID retrieves all accounts owned by a client, oldest first.
func (r *accountRepository) GetAccountsByClientID(clientID int64) ([]models.Account, error) {
	query := `SELECT id, client_id, type, currency, status FROM accounts
	          WHERE client_id = $1 ORDER BY id ASC`

	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying accounts for client ID %d: %v", ErrDatabaseError, clientID, err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(
			&account.ID, &account.ClientID, &account.Type, &account.Currency, &account.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning account: %v", ErrDatabaseError, err)
		}
		accounts = append(accounts, account)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating account rows: %v", ErrDatabaseError, err)
	}
	return accounts, nil
}

// UpdateAccountStatus persists a status transition for an account.
func (r *accountRepository) UpdateAccountStatus(executor SQLExecutor, id int64, status models.AccountStatus) error {
	query := `UPDATE accounts SET status = $1 WHERE id = $2`
	result, err := executor.Exec(query, status, id)
	if err != nil {
		return fmt.Errorf("%w: updating status for account ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating account ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAccountsByClientID removes every account owned by a client. Deleting
// zero rows is not an error; a client may own no accounts.
func (r *accountRepository) DeleteAccountsByClientID(executor SQLExecutor, clientID int64) error {
	query := `DELETE FROM accounts WHERE client_id = $1`
	if _, err := executor.Exec(query, clientID); err != nil {
		return fmt.Errorf("%w: deleting accounts for client ID %d: %v", ErrDatabaseError, clientID, err)
	}
	return nil
}
