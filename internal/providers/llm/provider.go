package llm

import "context"

// Provider generates free-form text from a system role and a user prompt.
type Provider interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	Enabled() bool
}

type NoOpProvider struct{}

func (p *NoOpProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	return "", nil
}

func (p *NoOpProvider) Enabled() bool {
	return false
}
