package gemini

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

func init() {
	// Load .env file if it exists (not present in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Gemini_Model is an optional cloud completer consulted only after every local
// endpoint/model pair has been exhausted. It stays inert unless GEMINI_API_KEY
// is present in the environment.
type Gemini_Model struct {
	Model string `json:"model"`
}

// Configured reports whether the cloud path can be attempted at all.
func (g *Gemini_Model) Configured() bool {
	return strings.TrimSpace(os.Getenv("GEMINI_API_KEY")) != ""
}

// Complete sends the system prompt and user input as a single text prompt and
// returns the concatenated text parts of the first candidate.
func (g *Gemini_Model) Complete(ctx context.Context, systemPrompt, userInput string) (string, error) {
	if !g.Configured() {
		return "", fmt.Errorf("gemini: GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	modelToUse := g.Model
	if modelToUse == "" {
		modelToUse = DefaultModel
	}

	prompt := userInput
	if strings.TrimSpace(systemPrompt) != "" {
		prompt = systemPrompt + "\n\n" + userInput
	}

	result, err := client.Models.GenerateContent(
		ctx,
		modelToUse,
		genai.Text(prompt),
		nil, // config
	)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("gemini returned empty response content")
	}
	return text, nil
}
