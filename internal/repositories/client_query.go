package repositories

import (
	"fmt"
	"strings"

	"clients_directory/internal/models"
)

// BuildClientFilters translates the optional search fields into a WHERE
// clause with positional arguments. Blank or absent fields contribute no
// condition, so an empty request matches every client. The returned clause
// includes the leading " WHERE " or is empty.
func BuildClientFilters(req models.ClientSearchRequest) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argCount := 1

	if req.ID != nil {
		conditions = append(conditions, fmt.Sprintf("id = $%d", argCount))
		args = append(args, *req.ID)
		argCount++
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		// Matches the concatenation of first and last name, so a term
		// spanning the boundary ("aber" for Ana Beridze) still hits.
		conditions = append(conditions, fmt.Sprintf("LOWER(first_name || last_name) LIKE $%d", argCount))
		args = append(args, "%"+strings.ToLower(name)+"%")
		argCount++
	}
	if gender := strings.TrimSpace(req.Gender); gender != "" {
		conditions = append(conditions, fmt.Sprintf("gender = $%d", argCount))
		args = append(args, gender)
		argCount++
	}

	substringFilters := []struct {
		column string
		value  string
	}{
		{"document_id", req.DocumentID},
		{"phone_number", req.PhoneNumber},
		{"legal_address_country", req.LegalAddressCountry},
		{"legal_address_city", req.LegalAddressCity},
		{"actual_address_country", req.ActualAddressCountry},
		{"actual_address_city", req.ActualAddressCity},
	}
	for _, f := range substringFilters {
		value := strings.TrimSpace(f.value)
		if value == "" {
			continue
		}
		conditions = append(conditions, fmt.Sprintf("LOWER(%s) LIKE $%d", f.column, argCount))
		args = append(args, "%"+strings.ToLower(value)+"%")
		argCount++
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// BuildClientOrder maps a sort specifier to an ORDER BY clause. The specifier
// is the field name, optionally suffixed with "_desc". An unrecognized field
// falls back to ascending id; no specifier at all means newest first. Every
// clause carries an id tie-break so equal keys page deterministically.
func BuildClientOrder(sortBy string) string {
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case "lastname":
		return " ORDER BY LOWER(last_name) ASC, id ASC"
	case "lastname_desc":
		return " ORDER BY LOWER(last_name) DESC, id ASC"
	case "createdat":
		return " ORDER BY created_at ASC, id ASC"
	case "createdat_desc":
		return " ORDER BY created_at DESC, id ASC"
	case "":
		return " ORDER BY created_at DESC, id ASC"
	default:
		return " ORDER BY id ASC"
	}
}

// PageBounds converts one-based page parameters into LIMIT/OFFSET values.
// Caller-supplied values are used as-is; the offset is only floored at zero
// because the database rejects a negative one.
func PageBounds(page, pageSize int) (limit, offset int) {
	offset = (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return pageSize, offset
}
