package config

// NewStorage builds a Storage with explicit values for testing.
func NewStorage(backend, sessionsDir string) *Storage {
	return &Storage{backend: backend, sessionsDir: sessionsDir}
}

// NewCredit builds a Credit with an explicit API URL for testing.
func NewCredit(apiURL string) *Credit {
	return &Credit{apiURL: apiURL}
}
