package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

var ErrClientNotFound = errors.New("cliente não encontrado")

// Tipos de contato (papel na decisão de compra)
const (
	ContactTypeDecisor       = "decisor"
	ContactTypeInfluenciador = "influenciador"
	ContactTypeUsuario       = "usuario"
)

func IsValidContactType(t string) bool {
	switch t {
	case ContactTypeDecisor, ContactTypeInfluenciador, ContactTypeUsuario:
		return true
	}
	return false
}

// Entidade: Contact (pessoa vinculada a um Client)
type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	ContactType string `json:"contact_type"`
}

// Entidade: Client (empresa, unidade de engajamento comercial)
type Client struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"company_name"`
	BusinessArea string    `json:"business_area"`
	CompanySize  string    `json:"company_size"`
	Location     string    `json:"location"`
	Contacts     []Contact `json:"contacts"`
	CreatedAt    time.Time `json:"created_at"`
}

// Factory
func NewContact(name, role, phone, contactType string) (*Contact, error) {
	contact := &Contact{
		ID:          uuid.New().String(),
		Name:        name,
		Role:        role,
		Phone:       phone,
		ContactType: contactType,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

func (c *Contact) Validate() error {
	if c.Name == "" {
		return errors.New("contact name is required")
	}
	if c.Role == "" {
		return errors.New("contact role is required")
	}
	if c.Phone == "" {
		return errors.New("contact phone is required")
	}
	if !IsValidContactType(c.ContactType) {
		return fmt.Errorf("invalid contact_type: %s", c.ContactType)
	}
	return nil
}

// Factory: todo Client nasce com exatamente um Contact
func NewClient(companyName, businessArea, companySize, location string, firstContact Contact) (*Client, error) {
	client := &Client{
		ID:           uuid.New().String(),
		CompanyName:  companyName,
		BusinessArea: businessArea,
		CompanySize:  companySize,
		Location:     location,
		Contacts:     []Contact{firstContact},
		CreatedAt:    time.Now().UTC(),
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}

	return client, nil
}

func (c *Client) Validate() error {
	if c.CompanyName == "" {
		return errors.New("company_name is required")
	}
	if c.BusinessArea == "" {
		return errors.New("business_area is required")
	}
	if c.CompanySize == "" {
		return errors.New("company_size is required")
	}
	if c.Location == "" {
		return errors.New("location is required")
	}
	if len(c.Contacts) == 0 {
		return errors.New("client must have at least one contact")
	}
	return nil
}
