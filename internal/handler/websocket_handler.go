package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"mediexplain/internal/middleware"
	"mediexplain/internal/storage"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleStorageEvents godoc
// @Summary      저장소 변경 알림 WebSocket
// @Description  세션 슬롯(medi_user)과 분석 기록(medi_reports)의 변경 이벤트를 실시간으로 전달합니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.**
// @Description  클라이언트는 `ws://` 또는 `wss://` 스킴으로 연결하고, 인증은 **쿼리 파라미터('token')**로 수행합니다.
// @Description  각 메시지는 `{"key": "...", "op": "set|remove", "at": "..."}` 형식의 JSON 텍스트입니다.
// @Tags         WebSocket
// @Param        token    query     string  true  "로그인 시 발급받은 JWT 토큰"
// @Success      101      {string}  string  "101 Switching Protocols"
// @Failure      401      {object}  handler.ErrorResponse "토큰 누락 또는 유효하지 않은 토큰"
// @Router       /ws/storage [get]
func (h *Handler) HandleStorageEvents(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	// WebSocket 연결 업그레이드과 종료
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("HandleStorageEvents(): failed to upgrade for user %s: %v", user.Email, err)
		return
	}
	defer conn.Close()
	log.Printf("HandleStorageEvents(): connection established for user: %s", user.Email)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := h.Store.Subscribe(ctx)

	go func() {
		defer cancel()
		eventReadPump(conn, user.Email)
	}()
	eventWritePump(ctx, conn, user.Email, events)

	log.Printf("HandleStorageEvents(): connection closed for user: %s", user.Email)
}

// eventReadPump only drains control frames; it returns when the client goes
// away.
func eventReadPump(conn *websocket.Conn, email string) {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Debugf("eventReadPump(): %s: %v", email, err)
			return
		}
	}
}

func eventWritePump(ctx context.Context, conn *websocket.Conn, email string, events <-chan storage.Event) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return

		case ev, ok := <-events:
			if !ok {
				log.Printf("eventWritePump(): event stream closed for user: %s", email)
				conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(ev); err != nil {
				log.Printf("eventWritePump(): error sending event to user %s: %v", email, err)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
