/**
* Name: 			handler.go
* Description: 		Gin HTTP 핸들러 공통 의존성 및 응답 타입
 */
package handler

import (
	"time"

	"mediexplain/internal/analysis"
	"mediexplain/internal/knowledge"
	"mediexplain/internal/speech"
	"mediexplain/internal/storage"
)

// Handler carries the services every route needs.
type Handler struct {
	Store      storage.Store
	Sessions   *storage.SessionStore
	History    *storage.HistoryStore
	Analyzer   *analysis.Analyzer
	Knowledge  *knowledge.Client
	Narrator   speech.Narrator
	LoginDelay time.Duration

	now func() time.Time
}

func New(store storage.Store, analyzer *analysis.Analyzer, kb *knowledge.Client, narrator speech.Narrator, loginDelay time.Duration) *Handler {
	if narrator == nil {
		narrator = speech.Disabled{}
	}
	return &Handler{
		Store:      store,
		Sessions:   storage.NewSessionStore(store),
		History:    storage.NewHistoryStore(store),
		Analyzer:   analyzer,
		Knowledge:  kb,
		Narrator:   narrator,
		LoginDelay: loginDelay,
		now:        time.Now,
	}
}

type SuccessResponse struct {
	Message string `json:"message" example:"Logged out"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}
