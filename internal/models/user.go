package models

// 로그인 세션에 저장되는 사용자
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
