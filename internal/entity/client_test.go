package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContact(t *testing.T) {
	contact, err := NewContact("Joao", "Manager", "111", ContactTypeDecisor)

	assert.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "Joao", contact.Name)
}

func TestNewContactTipoInvalido(t *testing.T) {
	_, err := NewContact("Joao", "Manager", "111", "gerente")
	assert.Error(t, err)

	_, err = NewContact("Joao", "Manager", "111", "")
	assert.Error(t, err)
}

func TestNewContactCamposObrigatorios(t *testing.T) {
	_, err := NewContact("", "Manager", "111", ContactTypeDecisor)
	assert.Error(t, err)

	_, err = NewContact("Joao", "", "111", ContactTypeDecisor)
	assert.Error(t, err)

	_, err = NewContact("Joao", "Manager", "", ContactTypeDecisor)
	assert.Error(t, err)
}

func TestNewClient(t *testing.T) {
	contact, _ := NewContact("Joao", "Manager", "111", ContactTypeDecisor)
	client, err := NewClient("Acme", "industrial", "media", "SP", *contact)

	assert.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.Len(t, client.Contacts, 1)
	assert.False(t, client.CreatedAt.IsZero())
	assert.Equal(t, "UTC", client.CreatedAt.Location().String())
}

func TestNewClientCamposObrigatorios(t *testing.T) {
	contact, _ := NewContact("Joao", "Manager", "111", ContactTypeDecisor)

	_, err := NewClient("", "industrial", "media", "SP", *contact)
	assert.Error(t, err)

	_, err = NewClient("Acme", "", "media", "SP", *contact)
	assert.Error(t, err)
}

func TestIsValidContactType(t *testing.T) {
	assert.True(t, IsValidContactType("decisor"))
	assert.True(t, IsValidContactType("influenciador"))
	assert.True(t, IsValidContactType("usuario"))
	assert.False(t, IsValidContactType("decisora"))
	assert.False(t, IsValidContactType(""))
}

func TestNewConversationMessage(t *testing.T) {
	msg := NewConversationMessage("client-1", "sess-1", MessageTypeClientSpeech, "olá")

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "client-1", msg.ClientID)
	assert.Equal(t, "sess-1", msg.SessionID)
	assert.Equal(t, MessageTypeClientSpeech, msg.MessageType)
	assert.False(t, msg.Timestamp.IsZero())
}
