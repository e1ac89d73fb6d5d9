package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ratneshsingh30/study-assistant/internal/config"
	"github.com/ratneshsingh30/study-assistant/internal/studykit"
	"github.com/ratneshsingh30/study-assistant/internal/types"
)

var (
	generateShape string
	generateTopic string
	generateFile  string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one section from text on stdin or a file",
	Long: `Generate a single section of study material. Input text is read from
--file, or from stdin when no file is given.

Shapes: summary, resources, study_guide, quiz, notes, insights.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateShape, "shape", "s", "summary", "section shape to generate")
	generateCmd.Flags().StringVarP(&generateTopic, "topic", "t", "", "topic override (detected from text when empty)")
	generateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "read input text from this file instead of stdin")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	shape, err := types.ParseShape(generateShape)
	if err != nil {
		return err
	}

	text, err := readInput()
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("no input text provided")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	creds := config.LoadCredentials()
	builder := studykit.NewBuilder(buildChain(cfg, creds))

	topic := generateTopic
	if topic == "" {
		topic = studykit.ExtractTopic(text)
	}

	section := builder.GenerateSection(cmd.Context(), shape, topic, text)

	fmt.Fprintf(os.Stderr, "provider: %s fallback: %v\n", section.Provider, section.Fallback)
	fmt.Println(section.Content)
	return nil
}

func readInput() (string, error) {
	if generateFile != "" {
		data, err := os.ReadFile(generateFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", generateFile, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
