package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

const newClientAlertTemplate = `<html>
<body>
  <h2>Novo cliente cadastrado 🎉</h2>
  <p>A empresa <strong>{{.CompanyName}}</strong> acabou de entrar no sistema.</p>
  <p>Primeiro contato: <strong>{{.ContactName}}</strong>.</p>
  <p>Acesse o painel para iniciar a primeira ligação.</p>
</body>
</html>`

var alertTmpl = template.Must(template.New("new_client_alert").Parse(newClientAlertTemplate))

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

// SendNewClientAlert avisa o time comercial sobre um cadastro novo.
func (s *EmailSender) SendNewClientAlert(to, companyName, contactName string) error {
	data := NewClientAlertData{
		CompanyName: companyName,
		ContactName: contactName,
	}

	var body bytes.Buffer
	if err := alertTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "nao-responda@dosanjosengenharia.com.br")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Novo cliente: %s", companyName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
