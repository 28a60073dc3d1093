package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mediexplain/internal/models"
	"mediexplain/internal/speech"
)

// 분석 기록 목록 응답 (Wrapper)
type HistoryResponse struct {
	History []models.HistoryEntry `json:"history"`
}

// GetHistory godoc
// @Summary      분석 기록 조회
// @Description  저장된 분석 기록을 저장된 순서(오래된 것 먼저)로 반환합니다.
// @Tags         History
// @Produce      json
// @Security     BearerAuth
// @Success      200      {object}  handler.HistoryResponse "history: [기록 배열]"
// @Failure      401      {object}  handler.ErrorResponse "인증 실패"
// @Failure      500      {object}  handler.ErrorResponse "서버 내부 오류"
// @Router       /api/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	entries, err := h.History.Load(c.Request.Context())
	if err != nil {
		log.Printf("GetHistory(): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{History: entries})
}

// StreamNarration godoc
// @Summary      설명문 음성 재생
// @Description  기록 항목의 쉬운 설명문을 해당 언어 음성(MP3)으로 변환합니다.
// @Description  <br>
// @Description  **인증 방법:**
// @Description  1. **Header:** `Authorization: Bearer {token}`
// @Description  2. **Query:** `?token={token}` (웹/HTML 오디오 태그용)
// @Tags         History
// @Produce      audio/mpeg
// @Security     BearerAuth
// @Param        id       path      string  true  "기록 ID"
// @Param        token    query     string  false "JWT 토큰 (헤더 사용 시 생략 가능)"
// @Success      200      {file}    file    "MP3 오디오"
// @Failure      401      {object}  handler.ErrorResponse "인증 실패"
// @Failure      404      {object}  handler.ErrorResponse "기록 없음"
// @Failure      503      {object}  handler.ErrorResponse "음성 변환 비활성화"
// @Router       /api/history/{id}/narration [get]
func (h *Handler) StreamNarration(c *gin.Context) {
	id := c.Param("id")

	entry, ok, err := h.History.Find(c.Request.Context(), id)
	if err != nil {
		log.Printf("StreamNarration(): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if entry.SimplifiedExplanation == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report has no explanation"})
		return
	}

	audio, err := h.Narrator.Narrate(c.Request.Context(), entry.SimplifiedExplanation, entry.Language)
	if err != nil {
		if errors.Is(err, speech.ErrDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Narration is not enabled"})
			return
		}
		log.Printf("StreamNarration(): %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate audio"})
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
