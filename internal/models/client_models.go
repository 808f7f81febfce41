package models

import "time"

// Gender of a client. Stored as its string representation.
type Gender string

const (
	GenderFemale Gender = "Female"
	GenderMale   Gender = "Male"
)

// Valid reports whether g is one of the known gender values.
func (g Gender) Valid() bool {
	return g == GenderFemale || g == GenderMale
}

// Client represents a person record in the directory.
//
// Invariants:
//   - DocumentID is exactly 11 characters and immutable after creation
//   - PhoneNumber is exactly 9 digits and starts with '5'
//   - All six address fields are non-empty
//   - CreatedAt is stamped once, in UTC, at creation
//   - At most one profile image reference; a new upload replaces it
type Client struct {
	ID                   int64     `json:"id" db:"id"`
	FirstName            string    `json:"first_name" db:"first_name"`
	LastName             string    `json:"last_name" db:"last_name"`
	Gender               Gender    `json:"gender" db:"gender"`
	DocumentID           string    `json:"document_id" db:"document_id"`
	PhoneNumber          string    `json:"phone_number" db:"phone_number"`
	LegalAddressCountry  string    `json:"legal_address_country" db:"legal_address_country"`
	LegalAddressCity     string    `json:"legal_address_city" db:"legal_address_city"`
	LegalAddressLine     string    `json:"legal_address_line" db:"legal_address_line"`
	ActualAddressCountry string    `json:"actual_address_country" db:"actual_address_country"`
	ActualAddressCity    string    `json:"actual_address_city" db:"actual_address_city"`
	ActualAddressLine    string    `json:"actual_address_line" db:"actual_address_line"`
	ProfileImageURL      *string   `json:"profile_image_url,omitempty" db:"profile_image_url"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	Accounts             []Account `json:"accounts"`
}

// ClientSearchRequest carries the optional filter, sort and paging parameters
// of the client search endpoint. Blank fields do not constrain the result.
type ClientSearchRequest struct {
	ID                   *int64 `form:"id"`
	Name                 string `form:"name"`
	Gender               string `form:"gender"`
	DocumentID           string `form:"document_id"`
	PhoneNumber          string `form:"phone_number"`
	LegalAddressCountry  string `form:"legal_address_country"`
	LegalAddressCity     string `form:"legal_address_city"`
	ActualAddressCountry string `form:"actual_address_country"`
	ActualAddressCity    string `form:"actual_address_city"`
	SortBy               string `form:"sort_by"`
	Page                 int    `form:"page,default=1"`
	PageSize             int    `form:"page_size,default=10"`
}

// PaginatedClientsResponse is the search endpoint envelope.
type PaginatedClientsResponse struct {
	Items      []Client `json:"items"`
	TotalCount int      `json:"total_count"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
}

// NewPaginatedClientsResponse computes TotalPages from the filtered total.
// A non-positive page size yields zero total pages.
func NewPaginatedClientsResponse(items []Client, totalCount, page, pageSize int) *PaginatedClientsResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return &PaginatedClientsResponse{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
