package llm

import (
	"github.com/salesavor/salesavor/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("providers.llm",
	fx.Provide(NewFromConfig),
)

func NewFromConfig(cfg config.Config) Provider {
	if cfg.LLM.Provider == "" || cfg.LLM.Provider == "none" || cfg.LLM.APIKey == "" {
		return &NoOpProvider{}
	}
	return NewOpenAI(Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
	})
}
