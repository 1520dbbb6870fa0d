package domain

// ProviderConfig selects and tunes a generative-text backend.
type ProviderConfig struct {
	Provider    string  `json:"provider" yaml:"provider"`
	Model       string  `json:"model,omitempty" yaml:"model,omitempty"`
	Temperature float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	MaxTokens   int     `json:"maxTokens,omitempty" yaml:"maxTokens,omitempty"`
	APIKey      string  `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	Endpoint    string  `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// DefaultProviderConfig returns the configuration used when a project carries
// none: the simulated provider with conservative sampling defaults.
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		Provider:    "dummy",
		Model:       "default",
		Temperature: 0.7,
		MaxTokens:   1000,
	}
}

// DocumentRef is a lightweight pointer to a document owned by a project.
type DocumentRef struct {
	ID    string `json:"id" yaml:"id"`
	Type  string `json:"type" yaml:"type"`
	Title string `json:"title" yaml:"title"`
}

// Project is a container of document references plus optional provider
// configuration shared by the flows it owns.
type Project struct {
	ID        string          `json:"id" yaml:"id"`
	Title     string          `json:"title" yaml:"title"`
	Documents []DocumentRef   `json:"documents,omitempty" yaml:"documents,omitempty"`
	Provider  *ProviderConfig `json:"provider,omitempty" yaml:"provider,omitempty"`
}

// ProviderOrDefault returns the project's provider configuration, or the
// default when the project is nil or carries none.
func (p *Project) ProviderOrDefault() ProviderConfig {
	if p == nil || p.Provider == nil {
		return DefaultProviderConfig()
	}
	return *p.Provider
}
