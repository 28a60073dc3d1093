// Package knowledge looks up reference information on lab tests and
// medications. The list endpoints fall back to a built-in catalog when the
// backend is unreachable; detail lookups have no fallback.
package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"mediexplain/internal/models"
)

var ErrNotFound = errors.New("knowledge: entry not found")

var fallbackTests = []string{
	"Hemoglobin", "WBC", "RBC", "FBS", "HbA1c", "SGPT", "SGOT", "Cholesterol",
	"LDL", "HDL", "Triglycerides", "Creatinine", "TSH", "Sodium", "Potassium",
}

var fallbackMedications = []string{
	"Metformin", "Aspirin", "Atorvastatin", "Lisinopril", "Amlodipine",
	"Omeprazole", "Paracetamol", "Insulin", "Amoxicillin", "Azithromycin",
}

// Listing is a list response; Fallback is set when the built-in catalog was
// used instead of the backend.
type Listing struct {
	Items    []string `json:"items"`
	Count    int      `json:"count"`
	Fallback bool     `json:"fallback"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListTests(ctx context.Context) Listing {
	var body struct {
		Tests []string `json:"tests"`
	}
	if err := c.get(ctx, "/knowledge/tests", &body); err != nil || body.Tests == nil {
		log.Printf("ListTests(): using built-in list: %v", err)
		return newListing(fallbackTests, true)
	}
	return newListing(body.Tests, false)
}

func (c *Client) ListMedications(ctx context.Context) Listing {
	var body struct {
		Medications []string `json:"medications"`
	}
	if err := c.get(ctx, "/knowledge/medications", &body); err != nil || body.Medications == nil {
		log.Printf("ListMedications(): using built-in list: %v", err)
		return newListing(fallbackMedications, true)
	}
	return newListing(body.Medications, false)
}

func (c *Client) TestDetail(ctx context.Context, name string) (*models.LabTestInfo, error) {
	var info models.LabTestInfo
	if err := c.get(ctx, "/knowledge/test/"+url.PathEscape(name), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) MedicationDetail(ctx context.Context, name string) (*models.MedicationInfo, error) {
	var info models.MedicationInfo
	if err := c.get(ctx, "/knowledge/medication/"+url.PathEscape(name), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("knowledge backend %s: %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func newListing(items []string, fallback bool) Listing {
	out := make([]string, len(items))
	copy(out, items)
	return Listing{Items: out, Count: len(out), Fallback: fallback}
}

// Filter keeps the items containing query, ignoring case. An empty query
// keeps everything.
func Filter(items []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if query == "" || strings.Contains(strings.ToLower(item), query) {
			out = append(out, item)
		}
	}
	return out
}
