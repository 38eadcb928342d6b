package imagegen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vovakirdan/pet-house/internal/game"
)

func TestGenerateRoomImageSuccess(t *testing.T) {
	var gotReq generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate-room-image" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("Unexpected method %q", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("Cannot decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"image": "data:image/png;base64,ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	img, err := client.GenerateRoomImage(context.Background(), "  sunny forest walls  ", game.RoomKitchen, nil)
	if err != nil {
		t.Fatalf("GenerateRoomImage() failed: %v", err)
	}
	if img != "data:image/png;base64,ok" {
		t.Errorf("Unexpected image ref %q", img)
	}

	if gotReq.Prompt != "sunny forest walls" {
		t.Errorf("Prompt not trimmed: %q", gotReq.Prompt)
	}
	if gotReq.Room != "Kitchen" {
		t.Errorf("Unexpected room %q", gotReq.Room)
	}
	if gotReq.AspectRatio != "16:9" {
		t.Errorf("Unexpected aspect ratio %q", gotReq.AspectRatio)
	}
	if gotReq.Seed != 202 {
		t.Errorf("Expected Kitchen default seed 202, got %d", gotReq.Seed)
	}
}

func TestGenerateRoomImageEmptyPrompt(t *testing.T) {
	client := NewClient("http://unused.invalid")

	if _, err := client.GenerateRoomImage(context.Background(), "   ", game.RoomKitchen, nil); err == nil {
		t.Error("Expected error for empty prompt")
	}
}

func TestGenerateRoomImageUnknownRoom(t *testing.T) {
	client := NewClient("http://unused.invalid")

	if _, err := client.GenerateRoomImage(context.Background(), "prompt", game.RoomName("Attic"), nil); err == nil {
		t.Error("Expected error for unknown room")
	}
}

func TestGenerateRoomImageBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Missing OPENAI_API_KEY"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GenerateRoomImage(context.Background(), "prompt", game.RoomBedroom, nil)
	if err == nil {
		t.Fatal("Expected backend error to surface")
	}
}

func TestGenerateRoomImageOptions(t *testing.T) {
	var gotReq generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]string{"image": "https://example.com/i.png"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GenerateRoomImage(context.Background(), "repaint", game.RoomLivingRoom, &Options{
		SourceImage: "data:image/png;base64,src",
		Mask:        "data:image/png;base64,mask",
		Strength:    0.4,
		Seed:        7,
	})
	if err != nil {
		t.Fatalf("GenerateRoomImage() failed: %v", err)
	}

	if gotReq.SourceImage != "data:image/png;base64,src" || gotReq.Mask != "data:image/png;base64,mask" {
		t.Errorf("Edit options not forwarded: %+v", gotReq)
	}
	if gotReq.Seed != 7 {
		t.Errorf("Explicit seed overridden: %d", gotReq.Seed)
	}
	if gotReq.Strength != 0.4 {
		t.Errorf("Strength not forwarded: %v", gotReq.Strength)
	}
}

func TestGenerateRoomImageMissingImageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.GenerateRoomImage(context.Background(), "prompt", game.RoomKitchen, nil); err == nil {
		t.Error("Expected error for response without image field")
	}
}
