package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/dosanjos/vendas-ia/internal/entity"
)

const listClientsLimit = 1000

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	contacts, err := json.Marshal(c.Contacts)
	if err != nil {
		return fmt.Errorf("erro ao serializar contatos: %w", err)
	}

	query := `
		INSERT INTO clients (id, company_name, business_area, company_size, location, contacts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.DB.ExecContext(ctx, query,
		c.ID,
		c.CompanyName,
		c.BusinessArea,
		c.CompanySize,
		c.Location,
		contacts,
		c.CreatedAt,
	)

	if err != nil {
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]entity.Client, error) {
	query := `
		SELECT id, company_name, business_area, company_size, location, contacts, created_at
		FROM clients
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, listClientsLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []entity.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *client)
	}

	return clients, rows.Err()
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, company_name, business_area, company_size, location, contacts, created_at
		FROM clients
		WHERE id = $1
	`

	client, err := scanClient(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrClientNotFound
		}
		return nil, err
	}

	return client, nil
}

// AppendContact faz o push atômico no array JSONB e devolve o documento
// atualizado na mesma roundtrip. Appends concorrentes no mesmo cliente
// não se perdem.
func (r *ClientRepository) AppendContact(ctx context.Context, clientID string, contact entity.Contact) (*entity.Client, error) {
	newContact, err := json.Marshal([]entity.Contact{contact})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar contato: %w", err)
	}

	query := `
		UPDATE clients
		SET contacts = contacts || $2::jsonb
		WHERE id = $1
		RETURNING id, company_name, business_area, company_size, location, contacts, created_at
	`

	client, err := scanClient(r.DB.QueryRowContext(ctx, query, clientID, newContact))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrClientNotFound
		}
		return nil, err
	}

	return client, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*entity.Client, error) {
	var client entity.Client
	var contactsRaw []byte

	err := row.Scan(
		&client.ID,
		&client.CompanyName,
		&client.BusinessArea,
		&client.CompanySize,
		&client.Location,
		&contactsRaw,
		&client.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(contactsRaw, &client.Contacts); err != nil {
		return nil, fmt.Errorf("erro ao desserializar contatos: %w", err)
	}

	return &client, nil
}
