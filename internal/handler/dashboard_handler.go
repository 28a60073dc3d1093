package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mediexplain/internal/dashboard"
)

// Dashboard godoc
// @Summary      대시보드
// @Description  기록으로부터 통계, 위험도 변화, 타임라인, 수치 추이를 계산합니다.
// @Tags         Dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dashboard.Summary
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	entries, err := h.History.Load(c.Request.Context())
	if err != nil {
		log.Printf("Dashboard(): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, dashboard.Summarize(entries, h.now()))
}

// TrendsChart godoc
// @Summary      수치 추이 차트
// @Description  반복 측정된 검사 수치의 추이를 HTML 선 그래프로 반환합니다.
// @Tags         Dashboard
// @Produce      html
// @Security     BearerAuth
// @Param        token    query     string  false "JWT 토큰 (헤더 사용 시 생략 가능)"
// @Success      200 {string} string "HTML"
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/dashboard/trends.html [get]
func (h *Handler) TrendsChart(c *gin.Context) {
	entries, err := h.History.Load(c.Request.Context())
	if err != nil {
		log.Printf("TrendsChart(): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	var buf bytes.Buffer
	if err := dashboard.RenderTrends(&buf, dashboard.BuildTrends(entries)); err != nil {
		log.Printf("TrendsChart(): render failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render chart"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
