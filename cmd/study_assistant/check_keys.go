package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ratneshsingh30/study-assistant/internal/config"
	"github.com/ratneshsingh30/study-assistant/internal/provider"
)

var checkKeysCmd = &cobra.Command{
	Use:   "check-keys",
	Short: "Report which API credentials are configured",
	Long: `Check for OPENAI_API_KEY and HUGGINGFACE_API_KEY in the environment
(and .env) and show the resulting backend selection order. Exits with
status 1 when no credential is set, meaning only static content is
available.`,
	Run: runCheckKeys,
}

func init() {
	rootCmd.AddCommand(checkKeysCmd)
}

func runCheckKeys(cmd *cobra.Command, args []string) {
	creds := config.LoadCredentials()

	report := func(name string, present bool) {
		status := "missing"
		if present {
			status = "configured"
		}
		fmt.Printf("  %-22s %s\n", name, status)
	}

	fmt.Println("Credentials:")
	report(config.EnvOpenAIKey, creds.HasOpenAI())
	report(config.EnvHuggingFaceKey, creds.HasHuggingFace())

	order := provider.SelectOrder(creds)
	fmt.Println("\nSelection order:")
	for i, id := range order {
		fmt.Printf("  %d. %s\n", i+1, id)
	}
	fmt.Printf("  %d. %s (always available)\n", len(order)+1, provider.IDStatic)

	if len(order) == 0 {
		fmt.Println("\nNo API credentials configured; responses will use static content only.")
		os.Exit(1)
	}
}
