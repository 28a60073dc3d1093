/**
* Name: 			session_handler.go
* Description: 		로그인 / 회원가입 / 데모 로그인 / 로그아웃 / 프로필
* Workflow: 		입력 검증, 지연 후 세션 슬롯 저장, JWT 발급
 */
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"mediexplain/internal/auth"
	"mediexplain/internal/middleware"
	"mediexplain/internal/models"
)

// 로그인 성공 응답
type LoginResponse struct {
	Token string      `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  models.User `json:"user"`
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  이메일/비밀번호가 입력되면 항상 성공합니다. 이름이 없으면 이메일 앞부분을 사용합니다.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        request body auth.Credentials true "로그인 요청 정보"
// @Success      200 {object} handler.LoginResponse
// @Failure      400 {object} handler.ErrorResponse "Please fill in all fields."
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	h.startSession(c, false)
}

// Signup godoc
// @Summary      회원가입 (Signup)
// @Description  로그인과 같지만 이름이 필수입니다.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        request body auth.Credentials true "회원가입 요청 정보"
// @Success      200 {object} handler.LoginResponse
// @Failure      400 {object} handler.ErrorResponse "Please enter your name."
// @Router       /signup [post]
func (h *Handler) Signup(c *gin.Context) {
	h.startSession(c, true)
}

func (h *Handler) startSession(c *gin.Context, signup bool) {
	var creds auth.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := auth.Login(c.Request.Context(), h.Sessions, creds, signup, h.LoginDelay)
	if err != nil {
		var formErr *auth.FormError
		if errors.As(err, &formErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": formErr.Msg})
			return
		}
		log.Printf("startSession(): failed to save session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}
	h.issueToken(c, user)
}

// DemoLogin godoc
// @Summary      데모 로그인
// @Description  고정된 데모 계정(Demo User)으로 즉시 로그인합니다.
// @Tags         Session
// @Produce      json
// @Success      200 {object} handler.LoginResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /login/demo [post]
func (h *Handler) DemoLogin(c *gin.Context) {
	user, err := auth.DemoLogin(c.Request.Context(), h.Sessions)
	if err != nil {
		log.Printf("DemoLogin(): failed to save session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}
	h.issueToken(c, user)
}

func (h *Handler) issueToken(c *gin.Context, user models.User) {
	tokenString, err := auth.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: tokenString, User: user})
}

// Logout godoc
// @Summary      로그아웃
// @Description  세션 슬롯을 비웁니다. 발급된 모든 토큰이 무효화됩니다. 기록은 유지됩니다.
// @Tags         Session
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.SuccessResponse
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Sessions.Clear(c.Request.Context()); err != nil {
		log.Printf("Logout(): failed to clear session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out"})
}

// Profile godoc
// @Summary      프로필 조회 (Profile)
// @Description  현재 로그인된 사용자를 반환합니다. (JWT 필요)
// @Tags         Session
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.User
// @Failure      401 {object} handler.ErrorResponse "인증 토큰 누락 또는 만료"
// @Router       /api/profile [get]
func (h *Handler) Profile(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, user)
}
