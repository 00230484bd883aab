package app

import (
	"fmt"
	"net/mail"
	"strings"

	"lead-assessment-service/internal/domain"
)

// NormalizeIdentity trims the contact fields and checks the required ones.
// Phone and business type are optional.
func NormalizeIdentity(id domain.Identity) (domain.Identity, error) {
	id.FirstName = strings.TrimSpace(id.FirstName)
	id.LastName = strings.TrimSpace(id.LastName)
	id.Email = strings.TrimSpace(id.Email)
	id.Phone = strings.TrimSpace(id.Phone)
	id.BusinessType = strings.TrimSpace(id.BusinessType)

	switch {
	case id.FirstName == "":
		return id, fmt.Errorf("%w: first name required", domain.ErrInvalidIdentity)
	case id.LastName == "":
		return id, fmt.Errorf("%w: last name required", domain.ErrInvalidIdentity)
	case id.Email == "":
		return id, fmt.Errorf("%w: email required", domain.ErrInvalidIdentity)
	}
	addr, err := mail.ParseAddress(id.Email)
	if err != nil || addr.Address != id.Email {
		return id, fmt.Errorf("%w: malformed email", domain.ErrInvalidIdentity)
	}
	return id, nil
}
