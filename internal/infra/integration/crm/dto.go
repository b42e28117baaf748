package crm

// UpdateLeadInput leva a temperatura do lead pro CRM depois de cada
// análise de conversa.
type UpdateLeadInput struct {
	ClientID       string
	CompanyName    string
	SessionID      string
	SentimentScore int
	Degraded       bool
}

type updateLeadRequest struct {
	ExternalID     string `json:"external_id"`
	CompanyName    string `json:"company_name"`
	SessionID      string `json:"session_id"`
	SentimentScore int    `json:"sentiment_score"`
	Degraded       bool   `json:"degraded"`
	Source         string `json:"source"`
}

type updateLeadResponse struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
	Error  *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}
