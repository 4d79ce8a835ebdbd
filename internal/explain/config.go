package explain

// Config controls explanation generation.
type Config struct {
	// MaxTokens caps the explanation response size.
	MaxTokens int

	// Temperature controls randomness. Explanations stay low so
	// repeated requests for the same item agree with each other.
	Temperature float64
}

// DefaultConfig returns the standard explanation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}
