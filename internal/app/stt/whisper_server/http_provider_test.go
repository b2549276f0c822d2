package whisper_server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicenote/internal/app/stt"
)

func writeTestAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF fake audio"), 0o644))
	return path
}

func newMockWhisperServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(server.Close)
	return server
}

func TestTranscript_JoinsSegmentsInOrder(t *testing.T) {
	server := newMockWhisperServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inference", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		assert.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "verbose_json", r.FormValue("response_format"))

		file, _, err := r.FormFile("file")
		if assert.NoError(t, err) {
			file.Close()
		}

		json.NewEncoder(w).Encode(inferenceResponse{
			Segments: []stt.Segment{
				{ID: 0, Start: 0, End: 2.1, Text: "Hello "},
				{ID: 1, Start: 2.1, End: 4.0, Text: "world."},
			},
		})
	})

	provider := NewProvider(Config{BaseURL: server.URL})
	transcript, err := provider.Transcript(context.Background(), writeTestAudio(t))
	require.NoError(t, err)
	assert.Equal(t, "Hello  world.", transcript)
}

func TestTranscript_FallsBackToFlatText(t *testing.T) {
	server := newMockWhisperServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(inferenceResponse{Text: "flat transcript"})
	})

	provider := NewProvider(Config{BaseURL: server.URL})
	transcript, err := provider.Transcript(context.Background(), writeTestAudio(t))
	require.NoError(t, err)
	assert.Equal(t, "flat transcript", transcript)
}

func TestTranscript_ServerErrorStatus(t *testing.T) {
	server := newMockWhisperServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("model not loaded"))
	})

	provider := NewProvider(Config{BaseURL: server.URL})
	_, err := provider.Transcript(context.Background(), writeTestAudio(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestTranscript_EngineErrorField(t *testing.T) {
	server := newMockWhisperServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(inferenceResponse{Error: "failed to read audio"})
	})

	provider := NewProvider(Config{BaseURL: server.URL})
	_, err := provider.Transcript(context.Background(), writeTestAudio(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read audio")
}

func TestTranscript_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	provider := NewProvider(Config{BaseURL: server.URL, Timeout: time.Second})
	_, err := provider.Transcript(context.Background(), writeTestAudio(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whisper-server request failed")
}

func TestTranscript_MissingFile(t *testing.T) {
	provider := NewProvider(Config{BaseURL: "http://localhost:1"})
	_, err := provider.Transcript(context.Background(), filepath.Join(t.TempDir(), "missing.wav"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open audio file")
}
