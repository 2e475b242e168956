package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"backend/config"
)

type RecService struct {
	client *http.Client
	token  string
	model  string
}

func NewRecService() *RecService {
	return &RecService{
		client: &http.Client{Timeout: 15 * time.Second},
		token:  os.Getenv("HUGGINGFACE_TOKEN"),
		model:  "google/flan-t5-small",
	}
}

// GetRecs summarizes today's entries (with their inflammation scores) and
// asks the HF inference API for practical swaps.
func (r *RecService) GetRecs(userID uint) ([]string, error) {
	if r.token == "" {
		return nil, fmt.Errorf("HUGGINGFACE_TOKEN not set")
	}

	day, err := NewAnalyticsService(config.DB).DayView(context.Background(), userID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("db error fetching day view: %w", err)
	}

	var sb bytes.Buffer
	sb.WriteString("Today's food log (inflammation score 0-100, lower is better):\n")
	if len(day.FoodEntries) == 0 {
		sb.WriteString("- (nothing logged yet)\n")
	} else {
		for _, e := range day.FoodEntries {
			sb.WriteString(fmt.Sprintf(
				"- %s (%s): %.0f kcal, score %d\n",
				e.Name, e.MealType, e.NutritionTotals.TotalCalories, e.InflammationScore,
			))
		}
		sb.WriteString(fmt.Sprintf("Daily inflammation score: %.0f\n", day.InflammationMetrics.DailyScore))
	}
	sb.WriteString("\nSuggest 3 to 5 practical anti-inflammatory swaps or additions (think oily fish, leafy greens, berries, olive oil; less fried/processed food and added sugar). Return plain bullet points.")

	body := map[string]any{
		"inputs": sb.String(),
		"parameters": map[string]any{
			"max_new_tokens": 128,
			"temperature":    0.2,
		},
	}
	b, _ := json.Marshal(body)

	req, _ := http.NewRequest(
		"POST",
		fmt.Sprintf("https://api-inference.huggingface.co/models/%s", r.model),
		bytes.NewReader(b),
	)
	req.Header.Set("Authorization", "Bearer "+r.token)
	req.Header.Set("Content-Type", "application/json")
	// Ensure HF loads cold models instead of returning a "loading" error
	req.Header.Set("x-wait-for-model", "true")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hf request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read hf response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var hfErr struct{ Error string `json:"error"` }
		if json.Unmarshal(respBytes, &hfErr) == nil && hfErr.Error != "" {
			return nil, fmt.Errorf("hf api error (%d): %s", resp.StatusCode, hfErr.Error)
		}
		return nil, fmt.Errorf("hf api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var hfOut []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(respBytes, &hfOut); err != nil {
		bodyPreview := string(respBytes)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}
		return nil, fmt.Errorf("decode hf response error: %v | body: %s", err, bodyPreview)
	}
	if len(hfOut) == 0 || strings.TrimSpace(hfOut[0].GeneratedText) == "" {
		return nil, fmt.Errorf("empty recommendations from hf")
	}

	var recs []string
	for _, line := range strings.Split(hfOut[0].GeneratedText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimLeft(line, "-•* \t")
		if line != "" {
			recs = append(recs, line)
		}
	}
	return recs, nil
}
