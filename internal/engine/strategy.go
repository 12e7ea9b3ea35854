package engine

// Strategy is the interface for translation backends
type Strategy interface {
	// Render translates text between pre-validated languages and
	// reports a confidence estimate in [0, 1]
	Render(text, source, target string) (string, float64, error)

	// Name returns the stable strategy identifier recorded as model_used
	Name() string
}
