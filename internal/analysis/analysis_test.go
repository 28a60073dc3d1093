package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediexplain/internal/dashboard"
	"mediexplain/internal/models"
	"mediexplain/internal/storage"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")

const sgptResult = `{
	"report_id": "r-1",
	"status": "completed",
	"risk_level": "HIGH",
	"abnormal_values": [
		{"test": "SGPT", "value": 75, "unit": "U/L", "status": "high", "severity": "moderate", "normal_range": "7-56"}
	],
	"simplified_explanation": "Your liver enzyme is raised.",
	"recommendations": ["Avoid alcohol"],
	"questions_to_ask_doctor": ["Should I repeat the test?"],
	"language": "en"
}`

type fakeBackend struct {
	*httptest.Server
	uploads   int32
	processes int32
	lastQuery chan map[string]string
}

func newFakeBackend(t *testing.T, process http.HandlerFunc) *fakeBackend {
	fb := &fakeBackend{lastQuery: make(chan map[string]string, 1)}
	mux := http.NewServeMux()
	mux.HandleFunc("/upload/report", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fb.uploads, 1)
		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		data, _ := io.ReadAll(file)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(UploadResponse{
			ReportID: "r-1",
			FilePath: "uploads/r-1_" + header.Filename,
			FileName: header.Filename,
			FileSize: int64(len(data)),
			Message:  "File uploaded successfully",
		})
	})
	mux.HandleFunc("/process/report/r-1", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fb.processes, 1)
		q := map[string]string{}
		for k := range r.URL.Query() {
			q[k] = r.URL.Query().Get(k)
		}
		select {
		case fb.lastQuery <- q:
		default:
		}
		process(w, r)
	})
	fb.Server = httptest.NewServer(mux)
	t.Cleanup(fb.Close)
	return fb
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func newAnalyzer(t *testing.T, baseURL string) (*Analyzer, *storage.HistoryStore) {
	store := storage.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	history := storage.NewHistoryStore(store)
	return NewAnalyzer(NewClient(baseURL, 0), history), history
}

func TestAnalyzeRecordsHistory(t *testing.T) {
	backend := newFakeBackend(t, respond(http.StatusOK, sgptResult))
	analyzer, history := newAnalyzer(t, backend.URL)
	fixed := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	analyzer.now = func() time.Time { return fixed }

	entry, err := analyzer.Analyze(context.Background(), Submission{
		Filename: "blood.pdf",
		Data:     pdfBytes,
		Patient:  models.PatientInfo{Age: 42},
	})
	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, entry.RiskLevel)
	assert.Equal(t, "blood.pdf", entry.Filename)
	assert.Equal(t, "2026-05-01T09:30:00Z", entry.Date)
	assert.NotEmpty(t, entry.ID)
	require.Len(t, entry.AbnormalValues, 1)
	assert.Equal(t, models.Measurement("75"), entry.AbnormalValues[0].Value)

	q := <-backend.lastQuery
	assert.Equal(t, "uploads/r-1_blood.pdf", q["file_path"])
	assert.Equal(t, "42", q["patient_age"])
	assert.Equal(t, "male", q["patient_gender"])
	assert.Equal(t, "en", q["language"])

	entries, err := history.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)

	summary := dashboard.Summarize(entries, fixed.Add(time.Hour))
	require.NotNil(t, summary.Stats)
	assert.Equal(t, models.RiskHigh, summary.Stats.CurrentRisk)
	assert.Equal(t, 1, summary.Stats.Count)
}

func TestAnalyzeOmitsUnsetAge(t *testing.T) {
	backend := newFakeBackend(t, respond(http.StatusOK, sgptResult))
	analyzer, _ := newAnalyzer(t, backend.URL)

	_, err := analyzer.Analyze(context.Background(), Submission{
		Filename: "blood.pdf",
		Data:     pdfBytes,
		Patient:  models.PatientInfo{Gender: "Female", Language: "hi"},
	})
	require.NoError(t, err)

	q := <-backend.lastQuery
	_, hasAge := q["patient_age"]
	assert.False(t, hasAge)
	assert.Equal(t, "female", q["patient_gender"])
	assert.Equal(t, "hi", q["language"])
}

func TestAnalyzeValidatesBeforeNetwork(t *testing.T) {
	backend := newFakeBackend(t, respond(http.StatusOK, sgptResult))
	analyzer, history := newAnalyzer(t, backend.URL)
	ctx := context.Background()

	_, err := analyzer.Analyze(ctx, Submission{Filename: "blood.pdf"})
	assert.ErrorIs(t, err, ErrNoFile)
	assert.Equal(t, "Please select a file first.", Message(err))

	cases := []Submission{
		{Filename: "notes.txt", Data: []byte("hello")},
		{Filename: "scan.png", Data: pdfBytes},
		{Filename: "blood.pdf", Data: pdfBytes, Patient: models.PatientInfo{Age: -1}},
		{Filename: "blood.pdf", Data: pdfBytes, Patient: models.PatientInfo{Gender: "robot"}},
		{Filename: "blood.pdf", Data: pdfBytes, Patient: models.PatientInfo{Language: "fr"}},
		{Filename: "big.pdf", Data: make([]byte, MaxFileSize+1)},
	}
	for _, sub := range cases {
		_, err := analyzer.Analyze(ctx, sub)
		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr), "%s: %v", sub.Filename, err)
	}

	assert.Zero(t, atomic.LoadInt32(&backend.uploads))
	entries, err := history.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestValidateAcceptsImageUnderOtherImageExtension(t *testing.T) {
	pngBytes := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

	sub := &Submission{Filename: "scan.JPG", Data: pngBytes}
	require.NoError(t, Validate(sub))
	assert.Equal(t, "male", sub.Patient.Gender)
	assert.Equal(t, "en", sub.Patient.Language)

	var vErr *ValidationError
	assert.True(t, errors.As(Validate(&Submission{Filename: "scan.pdf", Data: pngBytes}), &vErr))
	assert.True(t, errors.As(Validate(&Submission{Filename: "scan.jpeg", Data: pdfBytes}), &vErr))
}

func TestAnalyzeDefaultFilename(t *testing.T) {
	backend := newFakeBackend(t, respond(http.StatusOK, sgptResult))
	analyzer, _ := newAnalyzer(t, backend.URL)

	entry, err := analyzer.Analyze(context.Background(), Submission{Data: pdfBytes})
	require.NoError(t, err)
	assert.Equal(t, "report", entry.Filename)
}

func TestAnalyzeBackendErrorDetail(t *testing.T) {
	backend := newFakeBackend(t, respond(http.StatusNotFound, `{"detail": "Report file not found"}`))
	analyzer, history := newAnalyzer(t, backend.URL)

	_, err := analyzer.Analyze(context.Background(), Submission{Filename: "blood.pdf", Data: pdfBytes})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Report file not found", Message(err))
	assert.EqualValues(t, 1, atomic.LoadInt32(&backend.uploads))

	entries, _ := history.Load(context.Background())
	assert.Empty(t, entries)
}

func TestMessageFallsBackToGeneric(t *testing.T) {
	backend := newFakeBackend(t, respond(http.StatusUnprocessableEntity, `{"detail": [{"loc": ["query"], "msg": "bad"}]}`))
	analyzer, _ := newAnalyzer(t, backend.URL)

	_, err := analyzer.Analyze(context.Background(), Submission{Filename: "blood.pdf", Data: pdfBytes})
	require.Error(t, err)
	assert.Equal(t, GenericFailure, Message(err))

	assert.Equal(t, GenericFailure, Message(errors.New("dial tcp: connection refused")))
	assert.Equal(t, "Failed to analyze. Make sure the backend is running on port 8000.", GenericFailure)
	assert.Equal(t, "", Message(nil))
}

func TestAnalyzeUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	analyzer, _ := newAnalyzer(t, url)
	_, err := analyzer.Analyze(context.Background(), Submission{Filename: "blood.pdf", Data: pdfBytes})
	require.Error(t, err)
	assert.Equal(t, GenericFailure, Message(err))
}

type failingStore struct {
	storage.Store
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestAnalyzeSurvivesHistoryWriteFailure(t *testing.T) {
	backend := newFakeBackend(t, respond(http.StatusOK, sgptResult))
	mem := storage.NewMemoryStore()
	defer mem.Close()
	analyzer := NewAnalyzer(NewClient(backend.URL, 0), storage.NewHistoryStore(failingStore{mem}))

	entry, err := analyzer.Analyze(context.Background(), Submission{Filename: "blood.pdf", Data: pdfBytes})
	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, entry.RiskLevel)
}

func TestNewClientTrimsBaseURL(t *testing.T) {
	assert.Equal(t, "http://x:1", NewClient("http://x:1/", 0).BaseURL())
	assert.Equal(t, DefaultBaseURL, NewClient("", 0).BaseURL())
}
