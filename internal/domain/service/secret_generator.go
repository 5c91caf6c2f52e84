package service

// SecretGenerator produces device secrets.
type SecretGenerator interface {
	// Generate returns a hex-encoded 256-bit random secret.
	Generate() (string, error)
}
