package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ratneshsingh30/study-assistant/internal/config"
	"github.com/ratneshsingh30/study-assistant/internal/provider"
	"github.com/ratneshsingh30/study-assistant/internal/provider/huggingface"
	"github.com/ratneshsingh30/study-assistant/internal/provider/openai"
	"github.com/ratneshsingh30/study-assistant/internal/provider/static"
	"github.com/ratneshsingh30/study-assistant/internal/studykit"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "study_assistant",
	Short: "Generate study materials from raw text",
	Long: `study_assistant turns raw study text into summaries, resource lists,
study guides, quizzes, notes, and insights. Generation tries the OpenAI
API first, falls back to the Hugging Face Inference API, and always
produces a result via built-in static content when no backend is usable.`,
}

func main() {
	// Missing .env is fine; credentials can come from the environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads the optional config file and applies defaults.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(config.Config{
		Port: 8080,
	})
	if verbose {
		merged.Verbose = true
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// buildChain wires the provider chain from credentials and configuration.
func buildChain(cfg *config.Config, creds provider.Credentials) *provider.Chain {
	clients := []provider.Client{
		openai.New(openai.Config{
			APIKey:  creds.OpenAIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		}),
		huggingface.New(huggingface.Config{
			APIKey:  creds.HuggingFaceKey,
			BaseURL: cfg.HFBaseURL,
			Models:  cfg.HFModels,
		}),
	}
	return provider.NewChain(creds, clients, static.New(), studykit.Validate)
}
