package usecase

import (
	"context"
	"log"

	"github.com/dosanjos/vendas-ia/internal/entity"
)

type CreateClientUseCase struct {
	Repo         ClientRepositoryInterface
	EmailService EmailService
	NotifyTo     string
}

func NewCreateClientUseCase(repo ClientRepositoryInterface, emailService EmailService, notifyTo string) *CreateClientUseCase {
	return &CreateClientUseCase{
		Repo:         repo,
		EmailService: emailService,
		NotifyTo:     notifyTo,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*entity.Client, error) {
	validationErrors := ValidateCreateClientInput(input)
	if len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: joinValidationErrors(validationErrors),
		}
	}

	contact, err := entity.NewContact(input.ContactName, input.ContactRole, input.ContactPhone, input.ContactType)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	client, err := entity.NewClient(input.CompanyName, input.BusinessArea, input.CompanySize, input.Location, *contact)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, client); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist client: " + err.Error(),
		}
	}

	// Aviso ao time comercial fora do caminho da resposta
	go func() {
		if uc.EmailService != nil && uc.NotifyTo != "" {
			if err := uc.EmailService.SendNewClientAlert(uc.NotifyTo, client.CompanyName, contact.Name); err != nil {
				log.Printf("⚠️ Falha ao enviar alerta de novo cliente: %v", err)
			}
		}
	}()

	return client, nil
}
