// Package genai asks a hosted Gemini model to draft display copy for a
// portfolio entry. The response is untrusted text: it is validated as JSON
// before anything reaches the caller, and every failure is non-fatal so the
// editor's form fields are left untouched.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/vmedia/showreel/internal/logger"
	"github.com/vmedia/showreel/internal/utils"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// ErrBusy is returned when a suggestion request is already in flight.
// One instance serves one operator; duplicate concurrent triggers of the
// same operation are rejected rather than queued.
var ErrBusy = errors.New("a suggestion request is already in flight")

// ErrMalformed is returned when the model reply is not the expected JSON.
var ErrMalformed = errors.New("model returned malformed suggestion")

// Suggestion is the structured copy the model proposes for an entry.
type Suggestion struct {
	Title       string `json:"title"`
	Client      string `json:"client"`
	Description string `json:"description"`
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     logger.Logger
	inFlight   atomic.Bool
}

// New creates a Gemini client. model is e.g. "gemini-2.5-flash".
func New(apiKey, model string, log logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
		logger:     log,
	}
}

// request/response shapes for the generateContent REST call.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Suggest asks the model for title/client/description copy based on the
// given source URL. Only one request may be in flight per client instance.
func (c *Client) Suggest(ctx context.Context, sourceURL string) (Suggestion, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return Suggestion{}, ErrBusy
	}
	defer c.inFlight.Store(false)

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: buildPrompt(sourceURL)}}}},
		GenerationConfig: generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return Suggestion{}, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Suggestion{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Suggestion{}, fmt.Errorf("model request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Suggestion{}, fmt.Errorf("read model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("model call rejected",
			logger.Int("status", resp.StatusCode))
		return Suggestion{}, fmt.Errorf("model call rejected with status %d", resp.StatusCode)
	}

	return parseSuggestion(raw)
}

// parseSuggestion digs the JSON payload out of the first candidate and
// validates it.
func parseSuggestion(raw []byte) (Suggestion, error) {
	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return Suggestion{}, fmt.Errorf("%w: empty candidates", ErrMalformed)
	}

	text := strings.TrimSpace(gr.Candidates[0].Content.Parts[0].Text)
	// Some models wrap JSON in a markdown fence despite the mime type hint.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")

	var s Suggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &s); err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if s.Title == "" && s.Client == "" && s.Description == "" {
		return Suggestion{}, fmt.Errorf("%w: all fields empty", ErrMalformed)
	}
	return s, nil
}

func buildPrompt(sourceURL string) string {
	return fmt.Sprintf(`Bạn là một chuyên gia biên tập nội dung cho portfolio phim ảnh cao cấp (Cinematic/Luxury).
Dựa vào đường dẫn này: %q (hoặc giả định nội dung nếu không truy cập được link), hãy sáng tạo nội dung tiếng Việt cho 3 trường sau:

1. title: Một tiêu đề ngắn gọn, sang trọng, mang tính nghệ thuật.
2. client: Tên loại dự án hoặc khách hàng giả định.
3. description: Một mô tả ngắn (khoảng 2 câu), dùng từ ngữ bay bổng, chuyên nghiệp.

Trả về kết quả CỰC KỲ CHÍNH XÁC dưới dạng JSON không có markdown block:
{ "title": "...", "client": "...", "description": "..." }`, sourceURL)
}
