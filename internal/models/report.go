package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskLow    RiskLevel = "LOW"
	RiskInfo   RiskLevel = "INFO"
)

// Order ranks risk by clinical urgency. Unknown levels rank with INFO.
func (r RiskLevel) Order() int {
	switch r {
	case RiskHigh:
		return 3
	case RiskMedium:
		return 2
	case RiskLow:
		return 1
	default:
		return 0
	}
}

func (r RiskLevel) Known() bool {
	switch r {
	case RiskHigh, RiskMedium, RiskLow, RiskInfo:
		return true
	}
	return false
}

// OrDefault returns r, or fallback when r is missing or unrecognized.
func (r RiskLevel) OrDefault(fallback RiskLevel) RiskLevel {
	if r.Known() {
		return r
	}
	return fallback
}

// Measurement keeps a lab value verbatim. The backend sends numbers, older
// records and hand-edited history may carry strings. Any other JSON token is
// kept as its raw text, which never reads as a number.
type Measurement string

var jsonNumber = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?$`)

// MarshalJSON writes a JSON number when the text is one, so backend numbers
// keep their wire type across a load/store round trip.
func (m Measurement) MarshalJSON() ([]byte, error) {
	if jsonNumber.MatchString(string(m)) {
		return []byte(m), nil
	}
	return json.Marshal(string(m))
}

func (m *Measurement) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Measurement(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		*m = Measurement(data)
		return nil
	}
	*m = Measurement(n.String())
	return nil
}

// decodeFields unmarshals each named member of a JSON object into its
// target, leaving members of the wrong type at their zero value. It reports
// false when data is not an object.
func decodeFields(data []byte, targets map[string]any) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return false
	}
	for key, target := range targets {
		if raw, ok := fields[key]; ok {
			_ = json.Unmarshal(raw, target)
		}
	}
	return true
}

type AbnormalValue struct {
	Test        string      `json:"test"`
	Value       Measurement `json:"value"`
	Unit        string      `json:"unit"`
	Status      string      `json:"status"`
	Severity    string      `json:"severity"`
	NormalRange string      `json:"normal_range"`
}

// UnmarshalJSON decodes field by field. A non-object yields an empty value.
func (v *AbnormalValue) UnmarshalJSON(data []byte) error {
	*v = AbnormalValue{}
	decodeFields(data, map[string]any{
		"test":         &v.Test,
		"value":        &v.Value,
		"unit":         &v.Unit,
		"status":       &v.Status,
		"severity":     &v.Severity,
		"normal_range": &v.NormalRange,
	})
	return nil
}

// AnalysisResult is produced by the analysis backend. Every field is optional
// on the wire; RiskLevel falls back per call site via OrDefault.
type AnalysisResult struct {
	ReportID              string          `json:"report_id,omitempty"`
	Status                string          `json:"status,omitempty"`
	RiskLevel             RiskLevel       `json:"risk_level,omitempty"`
	AbnormalValues        []AbnormalValue `json:"abnormal_values"`
	SimplifiedExplanation string          `json:"simplified_explanation"`
	Recommendations       []string        `json:"recommendations"`
	QuestionsToAskDoctor  []string        `json:"questions_to_ask_doctor"`
	ExtractedText         string          `json:"extracted_text,omitempty"`
	Language              string          `json:"language,omitempty"`
	AllValues             []AbnormalValue `json:"all_values"`
}

// Observations returns all_values when the backend sent them, else the
// abnormal values.
func (r AnalysisResult) Observations() []AbnormalValue {
	if r.AllValues != nil {
		return r.AllValues
	}
	return r.AbnormalValues
}

// HistoryEntry is one persisted analysis. Date stays textual so an
// unparsable persisted value survives a load/store round trip.
type HistoryEntry struct {
	AnalysisResult
	ID       string `json:"id,omitempty"`
	Date     string `json:"date"`
	Filename string `json:"filename"`
}

// DecodeHistoryEntry reads one stored entry leniently: each field is decoded
// on its own and a field of the wrong type keeps its zero value. Only a
// non-object fails.
func DecodeHistoryEntry(data []byte) (HistoryEntry, error) {
	var e HistoryEntry
	r := &e.AnalysisResult
	ok := decodeFields(data, map[string]any{
		"report_id":               &r.ReportID,
		"status":                  &r.Status,
		"risk_level":              &r.RiskLevel,
		"abnormal_values":         &r.AbnormalValues,
		"simplified_explanation":  &r.SimplifiedExplanation,
		"recommendations":         &r.Recommendations,
		"questions_to_ask_doctor": &r.QuestionsToAskDoctor,
		"extracted_text":          &r.ExtractedText,
		"language":                &r.Language,
		"all_values":              &r.AllValues,
		"id":                      &e.ID,
		"date":                    &e.Date,
		"filename":                &e.Filename,
	})
	if !ok {
		return HistoryEntry{}, fmt.Errorf("history entry is not a JSON object: %.40s", data)
	}
	return e, nil
}

func (e HistoryEntry) Time() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, e.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// 분석 요청 시 함께 전달되는 환자 정보 (폼 상태)
type PatientInfo struct {
	Age      int    `json:"age,omitempty"`
	Gender   string `json:"gender"`
	Language string `json:"language"`
}
