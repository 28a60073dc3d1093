/* JWT 토큰 생성 및 검증을 위한 유틸리티 함수들 */

package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"mediexplain/internal/models"
)

const (
	defaultKey = "default_secret_key"
	issuer     = "mediexplain-api"
)

var (
	mu       sync.RWMutex
	jwtKey   = []byte(defaultKey)
	tokenTTL = 24 * time.Hour
)

// Init sets the signing key and token lifetime. An empty secret keeps the
// built-in key, which is only fit for local use.
func Init(secret string, ttl time.Duration) {
	mu.Lock()
	defer mu.Unlock()

	if secret == "" {
		log.Warn("Init(): auth.jwt_secret is not set. Using default key.")
		jwtKey = []byte(defaultKey)
	} else {
		jwtKey = []byte(secret)
	}
	if ttl > 0 {
		tokenTTL = ttl
	}
}

func settings() ([]byte, time.Duration) {
	mu.RLock()
	defer mu.RUnlock()
	return jwtKey, tokenTTL
}

// Claims 구조체 정의, JWT 페이로드에 사용자 이메일/이름 포함
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (c *Claims) User() models.User {
	return models.User{Name: c.Name, Email: c.Email}
}

// JWT 토큰 생성
func GenerateToken(user models.User) (string, error) {
	key, ttl := settings()
	now := time.Now()
	claims := &Claims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   user.Email,
		},
	}

	// 토큰 문자열 생성 및 서명
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// JWT 토큰 검증
func ValidateToken(tokenString string) (*Claims, error) {
	key, _ := settings()
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
