package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"voicenote/internal/api/dto"
	apierrors "voicenote/internal/api/errors"
	"voicenote/internal/app/llm"
	"voicenote/internal/app/stt"
	"voicenote/internal/metrics"
)

// AllowedExtensions is the fixed, compiled-in upload allow-list.
var AllowedExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".flac", ".aac"}

// NoteService runs the transcribe-then-structure pipeline for one upload.
type NoteService interface {
	TranscribeUpload(ctx context.Context, filename string, content io.Reader) (*dto.TranscribeResponse, error)
}

type noteService struct {
	transcriber stt.Transcriber
	structurer  llm.Structurer
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewNoteService creates the pipeline service. The recognizer and
// structurer handles are long-lived and shared read-only by all requests.
func NewNoteService(transcriber stt.Transcriber, structurer llm.Structurer, m *metrics.Metrics, logger *zap.Logger) NoteService {
	return &noteService{
		transcriber: transcriber,
		structurer:  structurer,
		metrics:     m,
		logger:      logger,
	}
}

// TranscribeUpload validates the upload, stages it to a temp file,
// transcribes it and structures the transcript. The staged file is removed
// on every exit path; the removal is deferred the moment staging succeeds,
// so a failure before the path exists can never fault the cleanup.
func (s *noteService) TranscribeUpload(ctx context.Context, filename string, content io.Reader) (*dto.TranscribeResponse, error) {
	s.metrics.UploadsReceived.Inc()

	ext := strings.ToLower(filepath.Ext(filename))
	if !extensionAllowed(ext) {
		s.metrics.UploadsRejected.Inc()
		return nil, apierrors.NewValidationError(
			fmt.Sprintf("Unsupported file type '%s'. Allowed: %s", ext, strings.Join(AllowedExtensions, ", ")),
			map[string]string{"extension": ext},
		)
	}

	tempFile, err := os.CreateTemp("", "voicenote-*"+ext)
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("failed to stage upload: %v", err))
	}
	tempPath := tempFile.Name()
	defer func() {
		tempFile.Close()
		os.Remove(tempPath)
	}()

	if _, err := io.Copy(tempFile, content); err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("failed to write upload: %v", err))
	}
	if err := tempFile.Sync(); err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("failed to flush upload: %v", err))
	}

	s.logger.Info("transcribing upload",
		zap.String("filename", filename),
		zap.String("staged_path", tempPath),
	)

	start := time.Now()
	transcript, err := s.transcriber.Transcript(ctx, tempPath)
	s.metrics.StageDuration.WithLabelValues("transcribe").Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.StageFailures.WithLabelValues("transcribe").Inc()
		return nil, apierrors.NewTranscriptionError(fmt.Sprintf("Transcription failed: %v", err))
	}

	s.logger.Info("transcription complete",
		zap.String("filename", filename),
		zap.Int("characters", len(transcript)),
	)

	start = time.Now()
	note, err := s.structurer.Structure(ctx, transcript)
	s.metrics.StageDuration.WithLabelValues("structure").Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.StageFailures.WithLabelValues("structure").Inc()
		return nil, mapStructuringError(err)
	}

	s.metrics.NotesProduced.Inc()
	s.logger.Info("structured note created",
		zap.String("filename", filename),
		zap.String("title", note.Title),
	)

	return &dto.TranscribeResponse{
		Success:       true,
		Filename:      filename,
		Transcription: transcript,
		Title:         note.Title,
		Markdown:      note.Content,
	}, nil
}

// mapStructuringError translates the structurer's tagged error variants
// into the API error taxonomy.
func mapStructuringError(err error) *apierrors.APIError {
	var unavailable *llm.UnavailableError
	if stderrors.As(err, &unavailable) {
		return apierrors.NewStructuringUnavailableError(unavailable.Error())
	}

	var serviceErr *llm.ServiceError
	if stderrors.As(err, &serviceErr) {
		return apierrors.NewStructuringServiceError(serviceErr.Error())
	}

	return apierrors.Wrap(err)
}

func extensionAllowed(ext string) bool {
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
