package scan

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/simmi-91/freezer-storage-app/domain"
	"github.com/simmi-91/freezer-storage-app/internal/utils"
)

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// recognizeItems sends the photo to Gemini and parses the recognized drafts.
func recognizeItems(ctx context.Context, imageFile *multipart.FileHeader) ([]domain.RecognizedItem, error) {
	file, err := imageFile.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	base64Image := base64.StdEncoding.EncodeToString(fileData)

	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not configured")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return nil, fmt.Errorf("GEMINI_MODEL not configured")
	}

	mimeType := imageFile.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
		switch strings.ToLower(filepath.Ext(imageFile.Filename)) {
		case ".png":
			mimeType = "image/png"
		case ".gif":
			mimeType = "image/gif"
		case ".webp":
			mimeType = "image/webp"
		}
	}

	categories := make([]string, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		categories = append(categories, string(category))
	}

	prompt := fmt.Sprintf(
		"Identify every food item visible in this photo. Respond ONLY with a valid JSON array. "+
			"Each element must contain exactly these fields: 'name' (string), 'category' (one of: %s), "+
			"'quantity' (positive number), 'unit' (short string like 'pcs', 'g', 'kg'), "+
			"'expiry_date' (string, YYYY-MM-DD, a reasonable freezer expiry estimate from today %s), "+
			"and 'confidence' (number between 0 and 1). "+
			"Do not include any explanations, markdown formatting, or extra text.",
		strings.Join(categories, ", "),
		time.Now().Format(domain.DateLayout),
	)

	geminiURL := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		geminiModel, geminiAPIKey,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64Image,
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
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
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrRecognitionFailed
	}

	responseText := geminiResp.Candidates[0].Content.Parts[0].Text

	// Extract the array from markdown fences or surrounding commentary.
	if matches := jsonArrayPattern.FindString(responseText); matches != "" {
		responseText = matches
	}
	responseText = strings.TrimSpace(responseText)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	var items []domain.RecognizedItem
	if err := json.Unmarshal([]byte(responseText), &items); err != nil {
		return nil, fmt.Errorf("failed to parse recognition response: %v", err)
	}

	sanitized := make([]domain.RecognizedItem, 0, len(items))
	for _, item := range items {
		if item.Name == "" {
			continue
		}
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		if item.Confidence < 0 || item.Confidence > 1 {
			item.Confidence = 0.5
		}
		sanitized = append(sanitized, item)
	}

	if len(sanitized) == 0 {
		return nil, domain.ErrRecognitionFailed
	}

	return sanitized, nil
}
