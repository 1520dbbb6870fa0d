package domain

// Agent is a named prompt template. The prompt may contain {variableName}
// placeholders substituted at execution time (see pkg/template).
type Agent struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Prompt string `json:"prompt" yaml:"prompt"`
}
