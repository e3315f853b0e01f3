package memo

import "strings"

const sufficiencyWordThreshold = 50

var sufficiencyKeywords = []string{"borrower", "loan", "credit", "collateral", "income"}

// HasSufficientData is the heuristic gate deciding whether conversation text
// carries enough substance to justify generating a full memo. True iff the
// word count strictly exceeds 50 and at least one lending keyword appears
// case-insensitively. It is not a semantic judgment; false positives and
// negatives are acceptable.
func HasSufficientData(conversation string) bool {
	if len(strings.Fields(conversation)) <= sufficiencyWordThreshold {
		return false
	}

	lower := strings.ToLower(conversation)
	for _, keyword := range sufficiencyKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
