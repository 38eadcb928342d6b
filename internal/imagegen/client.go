// Package imagegen is the client for the external room-background
// generation service. Generation failures are surfaced to the caller so
// the UI can show them; they never touch game state, so a failed
// generation can never leave a partially updated house.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vovakirdan/pet-house/internal/game"
)

// DefaultTimeout bounds a single generation request. Image backends are
// slow; this is generous on purpose.
const DefaultTimeout = 60 * time.Second

// Options tune a generation request. All fields are optional.
type Options struct {
	// SourceImage is a data URL of the existing background to edit.
	SourceImage string
	// Mask is a data URL; white regions are editable, black preserved.
	Mask string
	// Strength controls how far an edit may drift from the source.
	Strength float64
	// Seed overrides the per-room default seed.
	Seed int
}

// Client talks to the generation backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL
// (e.g. "http://localhost:3000/api").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetHTTPClient replaces the underlying HTTP client (used by tests and
// by callers that need custom timeouts).
func (c *Client) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

// generateRequest is the backend's request document.
type generateRequest struct {
	Prompt      string  `json:"prompt"`
	Room        string  `json:"room"`
	AspectRatio string  `json:"aspectRatio,omitempty"`
	SourceImage string  `json:"sourceImage,omitempty"`
	Mask        string  `json:"mask,omitempty"`
	Seed        int     `json:"seed,omitempty"`
	Strength    float64 `json:"strength,omitempty"`
}

// generateResponse is the backend's response document. On success Image
// holds a URL or data URI usable directly as a background reference.
type generateResponse struct {
	Image string `json:"image"`
	Error string `json:"error"`
}

// defaultSeed returns the stable per-room seed used when the caller
// provides none, which keeps regenerations of the same room consistent.
func defaultSeed(room game.RoomName) int {
	switch room {
	case game.RoomLivingRoom:
		return 101
	case game.RoomKitchen:
		return 202
	default:
		return 303
	}
}

// GenerateRoomImage asks the backend for a new background for the given
// room. The prompt must be non-empty after trimming. Returns the image
// reference on success.
func (c *Client) GenerateRoomImage(ctx context.Context, prompt string, room game.RoomName, opts *Options) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("imagegen: prompt cannot be empty")
	}
	if !room.Valid() {
		return "", fmt.Errorf("imagegen: unknown room %q", room)
	}

	reqBody := generateRequest{
		Prompt:      prompt,
		Room:        string(room),
		AspectRatio: "16:9",
		Seed:        defaultSeed(room),
	}
	if opts != nil {
		reqBody.SourceImage = opts.SourceImage
		reqBody.Mask = opts.Mask
		reqBody.Strength = opts.Strength
		if opts.Seed != 0 {
			reqBody.Seed = opts.Seed
		}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("imagegen: cannot encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/generate-room-image", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("imagegen: cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("imagegen: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return "", fmt.Errorf("imagegen: cannot read response: %w", err)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("imagegen: invalid response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != "" {
			return "", fmt.Errorf("imagegen: backend error: %s", decoded.Error)
		}
		return "", fmt.Errorf("imagegen: backend returned status %d", resp.StatusCode)
	}
	if decoded.Image == "" {
		return "", fmt.Errorf("imagegen: backend returned no image")
	}

	return decoded.Image, nil
}
