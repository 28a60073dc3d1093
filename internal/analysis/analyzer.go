package analysis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"mediexplain/internal/content"
	"mediexplain/internal/models"
	"mediexplain/internal/storage"
)

// MaxFileSize bounds an uploaded report.
const MaxFileSize = 10 << 20

const defaultFilename = "report"

var ErrNoFile = errors.New("analysis: no file selected")

// NoFileMessage is the user-facing text for ErrNoFile.
const NoFileMessage = "Please select a file first."

// ValidationError is an input problem the user can fix by re-entering data.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// 허용 확장자 -> 실제 내용의 MIME 타입
var allowedTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// sameFamily accepts any allowed image for an image extension; a PDF must be
// a PDF.
func sameFamily(detected *mimetype.MIME, want string) bool {
	if detected.Is(want) {
		return true
	}
	if !strings.HasPrefix(want, "image/") {
		return false
	}
	return detected.Is("image/jpeg") || detected.Is("image/png")
}

var genders = map[string]bool{"male": true, "female": true, "other": true}

// Submission is one filled-in analyze form.
type Submission struct {
	Filename string
	Data     []byte
	Patient  models.PatientInfo
}

// Analyzer runs the analyze flow: validate, upload, process, record.
type Analyzer struct {
	client  *Client
	history *storage.HistoryStore
	now     func() time.Time
}

func NewAnalyzer(client *Client, history *storage.HistoryStore) *Analyzer {
	return &Analyzer{client: client, history: history, now: time.Now}
}

// Validate checks the submission before anything goes over the network and
// fills in the patient defaults.
func Validate(sub *Submission) error {
	if len(sub.Data) == 0 {
		return ErrNoFile
	}
	if len(sub.Data) > MaxFileSize {
		return &ValidationError{Msg: "File too large. Max size: 10MB"}
	}

	if sub.Filename != "" {
		ext := strings.ToLower(filepath.Ext(sub.Filename))
		want, ok := allowedTypes[ext]
		if !ok {
			return &ValidationError{Msg: "Invalid file type. Allowed: .pdf, .jpg, .jpeg, .png"}
		}
		detected := mimetype.Detect(sub.Data)
		if !sameFamily(detected, want) {
			return &ValidationError{Msg: fmt.Sprintf("File content does not match %s (detected %s)", ext, detected.String())}
		}
		if !detected.Is(want) {
			log.WithField("filename", sub.Filename).Warnf("Validate(): %s content uploaded as %s", detected.String(), ext)
		}
	}

	p := &sub.Patient
	if p.Age < 0 {
		return &ValidationError{Msg: "Age must be a positive number."}
	}
	p.Gender = strings.ToLower(strings.TrimSpace(p.Gender))
	if p.Gender == "" {
		p.Gender = "male"
	}
	if !genders[p.Gender] {
		return &ValidationError{Msg: fmt.Sprintf("Unknown gender %q.", p.Gender)}
	}
	if p.Language == "" {
		p.Language = content.DefaultLanguage
	}
	if _, ok := content.GetLanguage(p.Language); !ok {
		return &ValidationError{Msg: fmt.Sprintf("Unsupported language %q.", p.Language)}
	}
	return nil
}

// Analyze returns the recorded history entry. A failed history write is
// logged; the analysis itself still succeeds.
func (a *Analyzer) Analyze(ctx context.Context, sub Submission) (*models.HistoryEntry, error) {
	if err := Validate(&sub); err != nil {
		return nil, err
	}

	filename := sub.Filename
	if filename == "" {
		filename = defaultFilename
	}

	upload, err := a.client.UploadReport(ctx, filename, bytes.NewReader(sub.Data))
	if err != nil {
		log.Printf("Analyze(): upload failed: %v", err)
		return nil, fmt.Errorf("upload report: %w", err)
	}
	log.WithFields(log.Fields{"report_id": upload.ReportID, "file": filename}).Debug("report uploaded")

	result, err := a.client.ProcessReport(ctx, upload, sub.Patient)
	if err != nil {
		log.Printf("Analyze(): process failed for report %s: %v", upload.ReportID, err)
		return nil, fmt.Errorf("process report: %w", err)
	}

	entry := models.HistoryEntry{
		AnalysisResult: *result,
		ID:             uuid.NewString(),
		Date:           a.now().UTC().Format(time.RFC3339Nano),
		Filename:       filename,
	}
	if err := a.history.Append(ctx, entry); err != nil {
		log.Printf("Analyze(): failed to save history entry %s: %v", entry.ID, err)
	}
	return &entry, nil
}
