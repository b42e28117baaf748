package usecase

// Payload de criação de cliente: perfil da empresa + primeiro contato
type CreateClientInput struct {
	CompanyName  string `json:"company_name"`
	BusinessArea string `json:"business_area"`
	CompanySize  string `json:"company_size"`
	Location     string `json:"location"`
	ContactName  string `json:"contact_name"`
	ContactRole  string `json:"contact_role"`
	ContactPhone string `json:"contact_phone"`
	ContactType  string `json:"contact_type"`
}

type AddContactInput struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	ContactType string `json:"contact_type"`
}

type AnalyzeConversationInput struct {
	ClientID   string `json:"client_id"`
	SessionID  string `json:"session_id"`
	SpeechText string `json:"speech_text"`
}

// Payload de coaching devolvido ao front durante a ligação
type AIResponse struct {
	Suggestions    []string `json:"suggestions"`
	Analysis       string   `json:"analysis"`
	NextSteps      []string `json:"next_steps"`
	SentimentScore int      `json:"sentiment_score"`
	CallFlowStatus string   `json:"call_flow_status"`
}

// AnalysisResult torna explícito o ramo degradado: mesmo com Degraded=true
// o Response tem formato de sucesso (HTTP 200) — por contrato, a UI da
// ligação nunca recebe erro duro no meio da chamada.
type AnalysisResult struct {
	Response *AIResponse
	Degraded bool
	Reason   string
}
