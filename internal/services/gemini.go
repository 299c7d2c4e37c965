// Gemini API implementation of [Analyzer] and [Planner]
//
// Talks to the generateContent REST surface. Analysis requests pin a JSON
// response schema; plan requests ask for free-form markdown.
package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/desertthunder/fitsense/internal/models"
	"github.com/desertthunder/fitsense/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	defaultGeminiModel   = "gemini-2.5-flash"
	defaultRequestsPerMinute = 10

	// Lower temperature for analytical output, higher for plan prose.
	analysisTemperature = 0.2
	planTemperature     = 0.7
)

// GeminiService implements [Analyzer] and [Planner] against the Gemini API.
type GeminiService struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// GeminiOpts contains configuration options for creating a GeminiService.
type GeminiOpts struct {
	BaseURL           string
	Model             string
	APIKey            string       // query-parameter key auth
	AccessToken       string       // bearer token auth; wins over APIKey
	RequestsPerMinute int          // client-side budget, 0 means default
	HTTPClient        *http.Client // defaults to http.DefaultClient
}

// NewGeminiService creates a new Gemini client. When an access token is
// configured the underlying client is wrapped with an oauth2 transport;
// otherwise the API key travels as a query parameter.
func NewGeminiService(opts GeminiOpts) *GeminiService {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultGeminiBaseURL
	}
	if opts.Model == "" {
		opts.Model = defaultGeminiModel
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = defaultRequestsPerMinute
	}

	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	if opts.AccessToken != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, client)
		client = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.AccessToken}))
	}

	return &GeminiService{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		model:      opts.Model,
		apiKey:     opts.APIKey,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), 1),
	}
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   any     `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

// analysisSchema mirrors [models.AnalysisResult] for structured output.
var analysisSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"exerciseName": map[string]any{"type": "STRING"},
		"repCount":     map[string]any{"type": "INTEGER"},
		"formScore":    map[string]any{"type": "INTEGER", "description": "Score from 1 to 10"},
		"feedback":     map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
		"suggestions":  map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
	},
	"required": []string{"exerciseName", "repCount", "formScore", "feedback", "suggestions"},
}

// generate posts one generateContent request and returns the concatenated
// text of the first candidate. Single attempt; no retry.
func (g *GeminiService) generate(ctx context.Context, req geminiRequest) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	if g.apiKey != "" {
		apiURL += "?key=" + g.apiKey
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
				Status  string `json:"status"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return "", fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, errResp.Error.Message)
		}
		return "", fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
	}
	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates returned", shared.ErrMalformedResponse)
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("%w: empty candidate text", shared.ErrMalformedResponse)
	}

	return text.String(), nil
}

// AnalyzeWorkout submits the media inline and decodes the structured result.
func (g *GeminiService) AnalyzeWorkout(ctx context.Context, media []byte, mimeType, language string) (*models.AnalysisResult, error) {
	if len(media) == 0 {
		return nil, fmt.Errorf("%w: empty media payload", shared.ErrInvalidInput)
	}
	if language == "" {
		language = "en"
	}

	prompt := fmt.Sprintf(`Analyze this workout video/image.
Identify the exercise being performed.
Count the number of completed repetitions (if video) or estimate form (if image).
Evaluate the user's posture and form on a scale of 1-10.
Provide specific, constructive feedback on their form.
Provide 1-2 suggestions for improvement.

IMPORTANT: Provide all text output (feedback and suggestions) in %s language.
Return ONLY raw JSON without any markdown formatting or code blocks.`, language)

	req := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(media)}},
				{Text: prompt},
			},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      analysisTemperature,
			ResponseMimeType: "application/json",
			ResponseSchema:   analysisSchema,
		},
	}

	text, err := g.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var analysis models.AnalysisResult
	if err := json.Unmarshal([]byte(extractJSON(text)), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
	}

	return &analysis, nil
}

// GeneratePlan asks for a markdown weekly plan built from the request.
func (g *GeminiService) GeneratePlan(ctx context.Context, req models.WorkoutPlanRequest, language string) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	if language == "" {
		language = "en"
	}

	age := "Not specified"
	if req.Age > 0 {
		age = fmt.Sprintf("%d", req.Age)
	}
	focus := req.FocusArea
	if focus == "" {
		focus = "Full Body / Balanced"
	}
	limitations := req.Limitations
	if limitations == "" {
		limitations = "None"
	}

	prompt := fmt.Sprintf(`Create a personalized weekly workout plan for a user with the following details:
- Age: %s
- Goal: %s
- Fitness Level: %s
- Focus Area: %s
- Available Time: %d days per week, %d minutes per session
- Equipment: %s
- Injuries or Limitations: %s

Format the response in clean, readable Markdown.
Include:
1. A summary of the plan logic (why this plan fits the goal/age/limitations).
2. A day-by-day breakdown (e.g., Day 1, Day 2...).
3. Warm-up and Cool-down recommendations.
4. Safety tips specific to the user's age or limitations if any.

Keep the tone encouraging and professional.
IMPORTANT: Write the entire response in %s language.`,
		age, req.Goal, req.Level, focus, req.DaysPerWeek, req.DurationMinutes, req.Equipment, limitations, language)

	return g.generate(ctx, geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{Temperature: planTemperature},
	})
}

// extractJSON returns the first outer JSON object in text. Models
// occasionally wrap JSON-mode output in fences or preamble even when a
// schema is pinned.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return text
	}
	return text[start : end+1]
}
