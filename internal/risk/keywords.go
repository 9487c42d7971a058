package risk

import "strings"

// Damage terms as they show up in yard observations. Matched
// case-insensitively as substrings, so inflections like "arranhados" hit too.
var riskKeywords = []string{
	"arranhado", "quebrado", "amassado", "riscado", "solto",
	"danificado", "danificada", "ruim", "caído", "caida",
	"quebrada", "amassada", "rachado", "rachada",
	"travado", "travada", "desalinhado", "desalinhada",
}

// HasRiskKeyword reports whether the observation mentions any known damage
// term.
func HasRiskKeyword(observation string) bool {
	lower := strings.ToLower(observation)
	for _, kw := range riskKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
