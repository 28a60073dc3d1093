/**
* Name: 			analyze_handler.go
* Description: 		의료 보고서 업로드 및 분석 요청
* Workflow: 		폼 파싱 -> 검증 -> 업로드 -> 분석 -> 기록 저장
 */
package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mediexplain/internal/analysis"
	"mediexplain/internal/content"
	"mediexplain/internal/models"
)

type AnalyzeResponse struct {
	models.HistoryEntry
	Guidance content.Guidance `json:"guidance"`
}

// Analyze godoc
// @Summary      보고서 분석
// @Description  보고서 파일(PDF/JPG/PNG, 최대 10MB)과 환자 정보를 받아 분석 서버에 전달하고 결과를 기록에 추가합니다.
// @Description  같은 세션에서 분석이 진행 중이면 409를 반환합니다.
// @Tags         Analyze
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file           formData  file    true   "보고서 파일"
// @Param        patient_age    formData  int     false  "환자 나이"
// @Param        patient_gender formData  string  false  "male | female | other (기본 male)"
// @Param        language       formData  string  false  "언어 코드 (기본 en)"
// @Success      200 {object} handler.AnalyzeResponse
// @Failure      400 {object} handler.ErrorResponse "입력 오류"
// @Failure      409 {object} handler.ErrorResponse "분석 진행 중"
// @Failure      429 {object} handler.ErrorResponse "요청 과다"
// @Failure      502 {object} handler.ErrorResponse "분석 서버 오류"
// @Router       /api/analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	sub := analysis.Submission{
		Patient: models.PatientInfo{
			Gender:   c.PostForm("patient_gender"),
			Language: c.PostForm("language"),
		},
	}

	if raw := strings.TrimSpace(c.PostForm("patient_age")); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil || age < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Age must be a positive number."})
			return
		}
		sub.Patient.Age = age
	}

	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, analysis.MaxFileSize+1))
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
			return
		}
		sub.Filename = fileHeader.Filename
		sub.Data = data
	}

	entry, err := h.Analyzer.Analyze(c.Request.Context(), sub)
	if err != nil {
		var vErr *analysis.ValidationError
		if errors.Is(err, analysis.ErrNoFile) || errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": analysis.Message(err)})
			return
		}
		log.Printf("Analyze(): %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": analysis.Message(err)})
		return
	}

	c.JSON(http.StatusOK, AnalyzeResponse{
		HistoryEntry: *entry,
		Guidance:     content.GuidanceFor(entry.RiskLevel),
	})
}

// Languages godoc
// @Summary      지원 언어 목록
// @Tags         Analyze
// @Produce      json
// @Success      200 {array} content.Language
// @Router       /api/languages [get]
func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, content.Languages())
}

// About godoc
// @Summary      서비스 소개
// @Tags         About
// @Produce      json
// @Success      200 {object} content.About
// @Router       /api/about [get]
func (h *Handler) About(c *gin.Context) {
	c.JSON(http.StatusOK, content.GetAbout())
}
