package types

import "regexp"

// RequestID is a credit request identifier in the fixed form
// <2 uppercase letters>-<6 digits>-<4 digits>, e.g. US-123456-7890.
type RequestID string

var requestIDPattern = regexp.MustCompile(`[A-Z]{2}-\d{6}-\d{4}`)

// FindRequestID scans free text for a credit request identifier and returns
// the leftmost match. Absence of a match is a normal outcome, not an error;
// the input itself is never rejected.
func FindRequestID(text string) (RequestID, bool) {
	m := requestIDPattern.FindString(text)
	if m == "" {
		return "", false
	}
	return RequestID(m), true
}

func (x RequestID) String() string {
	return string(x)
}
