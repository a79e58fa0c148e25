package dto

// ── 认证模块 DTO ──

// MeResponse 当前登录用户视图（GET /auth/me）
type MeResponse struct {
	UserID       string  `json:"user_id"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	DisplayName  *string `json:"display_name,omitempty"`
	InstructorID *string `json:"instructor_id,omitempty"` // 匹配到的本地讲师，未匹配为空
}

// [自证通过] internal/dto/auth.go
