package usecase

import (
	"fmt"
	"strings"

	"github.com/dosanjos/vendas-ia/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateClientInput(input CreateClientInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.CompanyName) == "" {
		errors = append(errors, ValidationError{"company_name", "is required"})
	}
	if strings.TrimSpace(input.BusinessArea) == "" {
		errors = append(errors, ValidationError{"business_area", "is required"})
	}
	if strings.TrimSpace(input.CompanySize) == "" {
		errors = append(errors, ValidationError{"company_size", "is required"})
	}
	if strings.TrimSpace(input.Location) == "" {
		errors = append(errors, ValidationError{"location", "is required"})
	}

	errors = append(errors, validateContactFields(
		input.ContactName, input.ContactRole, input.ContactPhone, input.ContactType,
		"contact_name", "contact_role", "contact_phone", "contact_type",
	)...)

	return errors
}

func ValidateAddContactInput(input AddContactInput) []ValidationError {
	return validateContactFields(
		input.Name, input.Role, input.Phone, input.ContactType,
		"name", "role", "phone", "contact_type",
	)
}

func validateContactFields(name, role, phone, contactType, nameField, roleField, phoneField, typeField string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(name) == "" {
		errors = append(errors, ValidationError{nameField, "is required"})
	}
	if strings.TrimSpace(role) == "" {
		errors = append(errors, ValidationError{roleField, "is required"})
	}
	if strings.TrimSpace(phone) == "" {
		errors = append(errors, ValidationError{phoneField, "is required"})
	}

	if strings.TrimSpace(contactType) == "" {
		errors = append(errors, ValidationError{typeField, "is required"})
	} else if !entity.IsValidContactType(contactType) {
		errors = append(errors, ValidationError{typeField, "must be one of: decisor, influenciador, usuario"})
	}

	return errors
}

func joinValidationErrors(errs []ValidationError) string {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return strings.TrimSuffix(msg, ", ")
}
