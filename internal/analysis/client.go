// Package analysis talks to the report analysis backend: upload the file,
// then ask the backend to process it.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mediexplain/internal/models"
)

const DefaultBaseURL = "http://localhost:8000" // 분석 서버의 기본 URL

// GenericFailure is shown when an error carries no server detail.
const GenericFailure = "Failed to analyze. Make sure the backend is running on port 8000."

type UploadResponse struct {
	ReportID string `json:"report_id"`
	FilePath string `json:"file_path"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	Message  string `json:"message"`
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("analysis backend returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("analysis backend returned %d", e.Status)
}

// Message reduces any error from this package to the single line shown to
// the user.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Msg
	}
	if errors.Is(err, ErrNoFile) {
		return NoFileMessage
	}
	return GenericFailure
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for baseURL. A zero timeout leaves the request
// unbounded apart from its context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// UploadReport sends the file as multipart field "file".
func (c *Client) UploadReport(ctx context.Context, filename string, body io.Reader) (*UploadResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, body); err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload/report", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var upload UploadResponse
	if err := c.do(req, &upload); err != nil {
		return nil, err
	}
	return &upload, nil
}

// ProcessReport runs OCR, extraction and risk scoring on an uploaded file.
func (c *Client) ProcessReport(ctx context.Context, upload *UploadResponse, patient models.PatientInfo) (*models.AnalysisResult, error) {
	q := url.Values{}
	q.Set("file_path", upload.FilePath)
	if patient.Age > 0 {
		q.Set("patient_age", strconv.Itoa(patient.Age))
	}
	q.Set("patient_gender", patient.Gender)
	q.Set("language", patient.Language)

	endpoint := c.baseURL + "/process/report/" + url.PathEscape(upload.ReportID) + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var result models.AnalysisResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

// readDetail pulls the "detail" string out of an error body. Anything else,
// including the validation list the backend sends for 422, yields "".
func readDetail(r io.Reader) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 1<<20)).Decode(&body); err != nil {
		return ""
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		return ""
	}
	return detail
}
