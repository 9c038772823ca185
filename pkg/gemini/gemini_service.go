package gemini

import (
	"Agro-Assistant-Backend/domain"
	"Agro-Assistant-Backend/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultModel = "gemini-3-flash-preview"

type (
	// Turn is one past conversation message, already remapped to the
	// Gemini role vocabulary ("user" or "model").
	Turn struct {
		Role string
		Text string
	}

	GeminiService interface {
		GenerateReply(ctx context.Context, turns []Turn, systemInstruction string) (string, error)
	}

	geminiService struct {
		apiKey     string
		model      string
		httpClient *http.Client
	}
)

// NewGeminiService returns nil when no API key is configured; callers treat a
// nil service as "completion disabled".
func NewGeminiService() GeminiService {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return nil
	}

	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &geminiService{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *geminiService) GenerateReply(ctx context.Context, turns []Turn, systemInstruction string) (string, error) {
	contents := make([]map[string]interface{}, 0, len(turns))
	for _, turn := range turns {
		contents = append(contents, map[string]interface{}{
			"role": turn.Role,
			"parts": []map[string]interface{}{
				{"text": turn.Text},
			},
		})
	}

	requestBody := map[string]interface{}{
		"contents": contents,
		"systemInstruction": map[string]interface{}{
			"parts": []map[string]interface{}{
				{"text": systemInstruction},
			},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	geminiURL := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		s.model, s.apiKey,
	)

	geminiReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	geminiReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(geminiReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrCompletionFailed
	}

	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}
