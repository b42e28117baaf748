package usecase

import "strings"

// Heurísticas locais aplicadas sobre o texto bruto do modelo e sobre a
// fala do cliente. Tabelas literais, independentes do modelo, para serem
// testáveis e substituíveis em separado.

const (
	analysisMaxRunes      = 200
	suggestionMaxLen      = 100
	suggestionMinTrimmed  = 10
	maxSuggestions        = 3
	sentimentBase         = 65
	sentimentMin          = 30
	sentimentMax          = 95
	sentimentDegraded     = 50
	CallFlowInProgress    = "Em andamento - Explorando necessidades"
	CallFlowError         = "Erro no processamento"
)

// Linhas da resposta do modelo contendo qualquer um desses fragmentos
// viram sugestões de fala para o vendedor.
var suggestionKeywords = []string{"sugest", "resposta", "diga", "pergunte"}

var defaultSuggestions = []string{
	"Explore mais sobre as necessidades técnicas",
	"Questione sobre projetos atuais",
	"Proponha reunião para apresentação",
}

var defaultNextSteps = []string{
	"Continuar explorando necessidades",
	"Agendar reunião técnica",
}

var degradedNextSteps = []string{"Reagendar análise"}

// Tabela palavra -> peso. Match por substring, sem tokenização: cada
// ocorrência dentro de qualquer palavra conta.
var sentimentWeights = map[string]int{
	"interessante": 10,
	"bom":          10,
	"sim":          10,
	"preciso":      10,
	"necessário":   10,
	"importante":   10,
	"não":          -15,
	"talvez":       -15,
	"depois":       -15,
	"difícil":      -15,
	"caro":         -15,
	"complicado":   -15,
}

// SummarizeAnalysis corta a resposta em 200 caracteres, com reticências
// quando houver truncamento.
func SummarizeAnalysis(reply string) string {
	runes := []rune(reply)
	if len(runes) <= analysisMaxRunes {
		return reply
	}
	return string(runes[:analysisMaxRunes]) + "..."
}

// ExtractSuggestions varre a resposta linha a linha atrás das palavras-chave.
func ExtractSuggestions(reply string) []string {
	var suggestions []string

	for _, line := range strings.Split(reply, "\n") {
		lower := strings.ToLower(line)

		matched := false
		for _, keyword := range suggestionKeywords {
			if strings.Contains(lower, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		trimmed := strings.TrimSpace(line)
		runes := []rune(trimmed)
		if len(runes) <= suggestionMinTrimmed {
			continue
		}

		if len(runes) > suggestionMaxLen {
			trimmed = string(runes[:suggestionMaxLen])
		}
		suggestions = append(suggestions, trimmed)

		if len(suggestions) == maxSuggestions {
			break
		}
	}

	if len(suggestions) == 0 {
		return append([]string(nil), defaultSuggestions...)
	}
	return suggestions
}

// SentimentScore pontua a fala do cliente: base 65, pesos da tabela por
// ocorrência, resultado preso em [30, 95].
func SentimentScore(speech string) int {
	lower := strings.ToLower(speech)

	score := sentimentBase
	for word, weight := range sentimentWeights {
		score += strings.Count(lower, word) * weight
	}

	if score < sentimentMin {
		return sentimentMin
	}
	if score > sentimentMax {
		return sentimentMax
	}
	return score
}

func NextSteps() []string {
	return append([]string(nil), defaultNextSteps...)
}
