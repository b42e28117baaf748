package database

import (
	"context"
	"database/sql"
)

// Os contatos vivem como documento JSONB dentro do cliente; o append via
// operador || é atômico, o que garante o contrato do addContact.
// seq dá o desempate estável por ordem de inserção quando dois timestamps
// empatam.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS clients (
  id TEXT PRIMARY KEY,
  company_name TEXT NOT NULL,
  business_area TEXT NOT NULL,
  company_size TEXT NOT NULL,
  location TEXT NOT NULL,
  contacts JSONB NOT NULL DEFAULT '[]'::jsonb,
  created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS conversation_messages (
  seq BIGSERIAL PRIMARY KEY,
  id TEXT NOT NULL UNIQUE,
  client_id TEXT NOT NULL,
  session_id TEXT NOT NULL,
  message_type TEXT NOT NULL,
  content TEXT NOT NULL,
  "timestamp" TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_conversation_messages_session
  ON conversation_messages (client_id, session_id, "timestamp");
`

// EnsureSchema aplica o schema na subida do processo.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}
