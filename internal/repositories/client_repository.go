package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"clients_directory/internal/models"
)

const clientColumns = `id, first_name, last_name, gender, document_id, phone_number,
	          legal_address_country, legal_address_city, legal_address_line,
	          actual_address_country, actual_address_city, actual_address_line,
	          profile_image_url, created_at`

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	CreateClient(executor SQLExecutor, client *models.Client) (int64, error)
	GetClientByID(id int64) (*models.Client, error)
	GetClients(req models.ClientSearchRequest) ([]models.Client, int, error) // Clients, total count, error
	UpdateClient(executor SQLExecutor, client *models.Client) error
	DeleteClient(executor SQLExecutor, id int64) error
}

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

// CreateClient inserts a new client into the database.
func (r *clientRepository) CreateClient(executor SQLExecutor, client *models.Client) (int64, error) {
	query := `INSERT INTO clients (first_name, last_name, gender, document_id, phone_number,
	            legal_address_country, legal_address_city, legal_address_line,
	            actual_address_country, actual_address_city, actual_address_line,
	            profile_image_url, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	          RETURNING id`

	err := executor.QueryRow(query,
		client.FirstName, client.LastName, client.Gender, client.DocumentID, client.PhoneNumber,
		client.LegalAddressCountry, client.LegalAddressCity, client.LegalAddressLine,
		client.ActualAddressCountry, client.ActualAddressCity, client.ActualAddressLine,
		client.ProfileImageURL, client.CreatedAt,
	).Scan(&client.ID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating client: %v", ErrDatabaseError, err)
	}
	return client.ID, nil
}

// GetClientByID retrieves a client by their ID, without owned accounts.
func (r *clientRepository) GetClientByID(id int64) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	client, err := scanClient(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting client by ID %d: %v", ErrDatabaseError, id, err)
	}
	return client, nil
}

// GetClients retrieves a page of clients matching the search request, plus the
// total count of matches. The count is taken over the filtered set before
// sorting and paging, so it is independent of the requested page.
func (r *clientRepository) GetClients(req models.ClientSearchRequest) ([]models.Client, int, error) {
	where, args := BuildClientFilters(req)

	totalCount := 0
	countQuery := `SELECT COUNT(*) FROM clients` + where
	if err := r.db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("%w: counting clients: %v", ErrDatabaseError, err)
	}

	limit, offset := PageBounds(req.Page, req.PageSize)
	query := `SELECT ` + clientColumns + ` FROM clients` + where + BuildClientOrder(req.SortBy) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying clients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning client: %v", ErrDatabaseError, err)
		}
		clients = append(clients, *client)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating client rows: %v", ErrDatabaseError, err)
	}

	return clients, totalCount, nil
}

// UpdateClient writes all mutable fields of an existing client. CreatedAt and
// DocumentID are never touched after creation.
func (r *clientRepository) UpdateClient(executor SQLExecutor, client *models.Client) error {
	query := `UPDATE clients SET
	            first_name = $1, last_name = $2, phone_number = $3,
	            legal_address_country = $4, legal_address_city = $5, legal_address_line = $6,
	            actual_address_country = $7, actual_address_city = $8, actual_address_line = $9,
	            profile_image_url = $10
	          WHERE id = $11`

	result, err := executor.Exec(query,
		client.FirstName, client.LastName, client.PhoneNumber,
		client.LegalAddressCountry, client.LegalAddressCity, client.LegalAddressLine,
		client.ActualAddressCountry, client.ActualAddressCity, client.ActualAddressLine,
		client.ProfileImageURL, client.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating client ID %d: %v", ErrDatabaseError, client.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating client ID %d: %v", ErrDatabaseError, client.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteClient removes a client row. Owned accounts must be deleted first,
// within the same transaction, to satisfy the foreign key.
func (r *clientRepository) DeleteClient(executor SQLExecutor, id int64) error {
	query := `DELETE FROM clients WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner is an interface satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(s scanner) (*models.Client, error) {
	client := &models.Client{}
	var imageURL sql.NullString
	err := s.Scan(
		&client.ID, &client.FirstName, &client.LastName, &client.Gender,
		&client.DocumentID, &client.PhoneNumber,
		&client.LegalAddressCountry, &client.LegalAddressCity, &client.LegalAddressLine,
		&client.ActualAddressCountry, &client.ActualAddressCity, &client.ActualAddressLine,
		&imageURL, &client.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if imageURL.Valid {
		client.ProfileImageURL = &imageURL.String
	}
	return client, nil
}
