package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mediexplain/internal/knowledge"
)

// ListTests godoc
// @Summary      검사 항목 목록
// @Description  지식 서버의 검사 목록을 반환합니다. 서버 오류 시 내장 목록을 사용하며 fallback=true가 됩니다.
// @Tags         Knowledge
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  false  "검색어 (대소문자 무시)"
// @Success      200 {object} knowledge.Listing
// @Router       /api/knowledge/tests [get]
func (h *Handler) ListTests(c *gin.Context) {
	c.JSON(http.StatusOK, filtered(h.Knowledge.ListTests(c.Request.Context()), c.Query("q")))
}

// ListMedications godoc
// @Summary      약품 목록
// @Tags         Knowledge
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  false  "검색어 (대소문자 무시)"
// @Success      200 {object} knowledge.Listing
// @Router       /api/knowledge/medications [get]
func (h *Handler) ListMedications(c *gin.Context) {
	c.JSON(http.StatusOK, filtered(h.Knowledge.ListMedications(c.Request.Context()), c.Query("q")))
}

func filtered(l knowledge.Listing, q string) knowledge.Listing {
	l.Items = knowledge.Filter(l.Items, q)
	l.Count = len(l.Items)
	return l
}

// TestDetail godoc
// @Summary      검사 항목 상세
// @Tags         Knowledge
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "검사명"
// @Success      200 {object} models.LabTestInfo
// @Failure      404 {object} handler.ErrorResponse
// @Failure      502 {object} handler.ErrorResponse
// @Router       /api/knowledge/test/{name} [get]
func (h *Handler) TestDetail(c *gin.Context) {
	info, err := h.Knowledge.TestDetail(c.Request.Context(), c.Param("name"))
	if err != nil {
		knowledgeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// MedicationDetail godoc
// @Summary      약품 상세
// @Tags         Knowledge
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "약품명"
// @Success      200 {object} models.MedicationInfo
// @Failure      404 {object} handler.ErrorResponse
// @Failure      502 {object} handler.ErrorResponse
// @Router       /api/knowledge/medication/{name} [get]
func (h *Handler) MedicationDetail(c *gin.Context) {
	info, err := h.Knowledge.MedicationDetail(c.Request.Context(), c.Param("name"))
	if err != nil {
		knowledgeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func knowledgeError(c *gin.Context, err error) {
	if errors.Is(err, knowledge.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Information not available for this item."})
		return
	}
	log.Printf("knowledgeError(): %v", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "Could not connect to the knowledge service."})
}
