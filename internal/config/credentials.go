package config

import (
	"os"

	"github.com/ratneshsingh30/study-assistant/internal/provider"
)

// Environment variable names for provider credentials.
const (
	EnvOpenAIKey      = "OPENAI_API_KEY"
	EnvHuggingFaceKey = "HUGGINGFACE_API_KEY"
)

// LoadCredentials reads provider API keys from the environment. It is called
// once at startup and the result is passed into the chain explicitly;
// nothing else reads these variables.
func LoadCredentials() provider.Credentials {
	return provider.Credentials{
		OpenAIKey:      os.Getenv(EnvOpenAIKey),
		HuggingFaceKey: os.Getenv(EnvHuggingFaceKey),
	}
}
