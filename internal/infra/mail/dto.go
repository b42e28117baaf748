package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}

type NewClientAlertData struct {
	CompanyName string
	ContactName string
}
