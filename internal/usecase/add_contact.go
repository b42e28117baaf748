package usecase

import (
	"context"
	"errors"

	"github.com/dosanjos/vendas-ia/internal/entity"
)

type AddContactUseCase struct {
	Repo ClientRepositoryInterface
}

func NewAddContactUseCase(repo ClientRepositoryInterface) *AddContactUseCase {
	return &AddContactUseCase{Repo: repo}
}

func (uc *AddContactUseCase) Execute(ctx context.Context, clientID string, input AddContactInput) (*entity.Client, error) {
	validationErrors := ValidateAddContactInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(validationErrors),
		}
	}

	contact, err := entity.NewContact(input.Name, input.Role, input.Phone, input.ContactType)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	// Append atômico no array de contatos: sem lost update entre
	// requisições concorrentes para o mesmo cliente.
	client, err := uc.Repo.AppendContact(ctx, clientID, *contact)
	if err != nil {
		if errors.Is(err, entity.ErrClientNotFound) {
			return nil, err
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to append contact: " + err.Error(),
		}
	}

	return client, nil
}
