package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"mortgage-engine/domain"
)

// ExplanationService turns a computed schedule into a short human-readable
// payoff summary. When OPENAI_API_KEY is set the text is generated by the
// OpenAI API; otherwise a deterministic fallback is used.
type ExplanationService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

func NewExplanationService() *ExplanationService {
	apiKey := os.Getenv("OPENAI_API_KEY")

	return &ExplanationService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// PayoffExplanation describes what the extra payments achieve.
func (s *ExplanationService) PayoffExplanation(
	accelerated domain.Summary,
	savings domain.Savings,
) string {

	fallback := fallbackExplanation(accelerated, savings)
	if !s.enabled {
		return fallback
	}

	prompt := fmt.Sprintf(`Explain this mortgage payoff result in two or three clear sentences for a homeowner.

LOAN RESULT:
- Principal: $%.2f
- Monthly P&I payment: $%.2f
- Nominal term: %d years (%d payments)
- Actual payoff: %d payments
- Interest saved vs the standard schedule: $%.2f
- Time saved: %.1f years

Mention the payoff time and the interest saved. Do not give financial advice.`,
		accelerated.Principal,
		accelerated.MonthlyPayment,
		accelerated.TermYears,
		accelerated.NominalPayments,
		accelerated.ActualPayments,
		savings.InterestSaved,
		savings.YearsSaved,
	)

	text, err := s.complete(prompt)
	if err != nil {
		log.Printf("Warning: explanation request failed, using fallback: %v", err)
		return fallback
	}
	return text
}

func (s *ExplanationService) complete(prompt string) (string, error) {
	reqBody := openAIRequest{
		Model: "gpt-4o-mini",
		Messages: []openAIMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens: 200,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai status %d: %s", resp.StatusCode, string(body))
	}

	var parsed openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai response has no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func fallbackExplanation(accelerated domain.Summary, savings domain.Savings) string {
	years := accelerated.ActualPayments / MonthsPerYear
	months := accelerated.ActualPayments % MonthsPerYear

	return fmt.Sprintf(
		"With extra payments you pay off the loan in about %d years %d months, saving ~%.1f years and $%.0f in interest.",
		years, months, savings.YearsSaved, savings.InterestSaved,
	)
}
