package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apierrors "voicenote/internal/api/errors"
	"voicenote/internal/app/llm"
	"voicenote/internal/metrics"
)

type fakeTranscriber struct {
	transcript string
	err        error

	calledWith   string
	pathExisted  bool
	stagedSuffix string
}

func (f *fakeTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	f.calledWith = inputFilePath
	if _, err := os.Stat(inputFilePath); err == nil {
		f.pathExisted = true
	}
	if idx := strings.LastIndex(inputFilePath, "."); idx >= 0 {
		f.stagedSuffix = inputFilePath[idx:]
	}
	return f.transcript, f.err
}

type fakeStructurer struct {
	note *llm.StructuredNote
	err  error
}

func (f *fakeStructurer) Structure(ctx context.Context, transcript string) (*llm.StructuredNote, error) {
	return f.note, f.err
}

func newTestService(t *testing.T, transcriber *fakeTranscriber, structurer *fakeStructurer) NoteService {
	t.Helper()
	return NewNoteService(transcriber, structurer, metrics.New(prometheus.NewRegistry()), zap.NewNop())
}

func TestTranscribeUpload_Success(t *testing.T) {
	transcriber := &fakeTranscriber{transcript: "Hello  world."}
	structurer := &fakeStructurer{note: &llm.StructuredNote{Title: "Greeting", Content: "# Greeting\n\nHello world."}}
	service := newTestService(t, transcriber, structurer)

	resp, err := service.TranscribeUpload(context.Background(), "note.mp3", strings.NewReader("audio bytes"))
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "note.mp3", resp.Filename)
	assert.Equal(t, "Hello  world.", resp.Transcription)
	assert.Equal(t, "Greeting", resp.Title)
	assert.Equal(t, "# Greeting\n\nHello world.", resp.Markdown)

	// Staged file carried the upload's suffix, existed during
	// transcription and is gone after the call returns.
	assert.Equal(t, ".mp3", transcriber.stagedSuffix)
	assert.True(t, transcriber.pathExisted)
	assert.NoFileExists(t, transcriber.calledWith)
}

func TestTranscribeUpload_RejectsExtension(t *testing.T) {
	tests := []string{"notes.txt", "video.mp4", "archive", "evil.exe", "note.MP3.pdf"}

	for _, filename := range tests {
		t.Run(filename, func(t *testing.T) {
			transcriber := &fakeTranscriber{}
			service := newTestService(t, transcriber, &fakeStructurer{})

			_, err := service.TranscribeUpload(context.Background(), filename, strings.NewReader("data"))
			require.Error(t, err)

			apiErr, ok := err.(*apierrors.APIError)
			require.True(t, ok)
			assert.Equal(t, apierrors.KindValidation, apiErr.Kind)
			assert.Contains(t, apiErr.Message, "Unsupported file type")
			assert.Contains(t, apiErr.Message, ".mp3, .wav, .m4a, .ogg, .flac, .aac")

			// Validation failures never stage a file
			assert.Empty(t, transcriber.calledWith)
		})
	}
}

func TestTranscribeUpload_UppercaseExtensionAllowed(t *testing.T) {
	transcriber := &fakeTranscriber{transcript: "ok"}
	structurer := &fakeStructurer{note: &llm.StructuredNote{Title: "t", Content: "c"}}
	service := newTestService(t, transcriber, structurer)

	_, err := service.TranscribeUpload(context.Background(), "NOTE.WAV", strings.NewReader("data"))
	assert.NoError(t, err)
}

func TestTranscribeUpload_TranscriberFailure(t *testing.T) {
	transcriber := &fakeTranscriber{err: fmt.Errorf("unreadable file")}
	service := newTestService(t, transcriber, &fakeStructurer{})

	_, err := service.TranscribeUpload(context.Background(), "note.wav", strings.NewReader("data"))
	require.Error(t, err)

	apiErr, ok := err.(*apierrors.APIError)
	require.True(t, ok)
	assert.Equal(t, apierrors.KindTranscription, apiErr.Kind)
	assert.Contains(t, apiErr.Message, "unreadable file")

	// Cleanup runs on the failure path too
	assert.NoFileExists(t, transcriber.calledWith)
}

func TestTranscribeUpload_StructuringFailures(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedKind apierrors.ErrorKind
	}{
		{
			name:         "unreachable service maps to unavailable",
			err:          &llm.UnavailableError{Err: fmt.Errorf("connection refused")},
			expectedKind: apierrors.KindStructuringUnavailable,
		},
		{
			name:         "failure status maps to service error",
			err:          &llm.ServiceError{StatusCode: 500, Body: "boom"},
			expectedKind: apierrors.KindStructuringService,
		},
		{
			name:         "unknown error maps to internal",
			err:          fmt.Errorf("surprise"),
			expectedKind: apierrors.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcriber := &fakeTranscriber{transcript: "text"}
			service := newTestService(t, transcriber, &fakeStructurer{err: tt.err})

			_, err := service.TranscribeUpload(context.Background(), "note.ogg", strings.NewReader("data"))
			require.Error(t, err)

			apiErr, ok := err.(*apierrors.APIError)
			require.True(t, ok)
			assert.Equal(t, tt.expectedKind, apiErr.Kind)
			assert.NoFileExists(t, transcriber.calledWith)
		})
	}
}
