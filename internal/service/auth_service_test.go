package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/teamsparta-biz/tutor-scheduler/config"
	"github.com/teamsparta-biz/tutor-scheduler/internal/model"
	"github.com/teamsparta-biz/tutor-scheduler/internal/repository"
)

func setupTestAuthService() (AuthService, *repository.Repository) {
	repo := newTestRepository()
	cfg := &config.Config{
		Auth: config.AuthConfig{AdminDomain: "teamsparta.co"},
	}
	// cache 传 nil：测试走纯 DB 路径
	return NewAuthService(cfg, repo, nil, zap.NewNop()), repo
}

// ── 档案创建测试 ──

func TestAuthService_GetOrCreateProfile_AdminByDomain(t *testing.T) {
	svc, _ := setupTestAuthService()

	profile, err := svc.GetOrCreateProfile(context.Background(), "u-1", "boss@teamsparta.co")
	if err != nil {
		t.Fatalf("GetOrCreateProfile 应成功: %v", err)
	}
	if profile.Role != model.RoleAdmin {
		t.Errorf("域内邮箱期望 admin，实际=%s", profile.Role)
	}
}

func TestAuthService_GetOrCreateProfile_InstructorByDefault(t *testing.T) {
	svc, _ := setupTestAuthService()

	profile, err := svc.GetOrCreateProfile(context.Background(), "u-2", "tutor@gmail.com")
	if err != nil {
		t.Fatalf("GetOrCreateProfile 应成功: %v", err)
	}
	if profile.Role != model.RoleInstructor {
		t.Errorf("域外邮箱期望 instructor，实际=%s", profile.Role)
	}
}

func TestAuthService_GetOrCreateProfile_Idempotent(t *testing.T) {
	svc, repo := setupTestAuthService()

	first, err := svc.GetOrCreateProfile(context.Background(), "u-3", "a@teamsparta.co")
	if err != nil {
		t.Fatalf("首次应成功: %v", err)
	}
	second, err := svc.GetOrCreateProfile(context.Background(), "u-3", "a@teamsparta.co")
	if err != nil {
		t.Fatalf("二次应成功: %v", err)
	}
	if first.ProfileID != second.ProfileID {
		t.Errorf("同一用户应复用档案，实际=%s vs %s", first.ProfileID, second.ProfileID)
	}

	if _, err := repo.Profile.GetByUserID(context.Background(), "u-3"); err != nil {
		t.Fatalf("档案应存在: %v", err)
	}
}

// ── 讲师匹配测试 ──

func TestAuthService_Me_MatchesInstructorAndBackfills(t *testing.T) {
	svc, repo := setupTestAuthService()

	email := "tutor@gmail.com"
	ins := &model.Instructor{Name: "匹配讲师", Email: &email, IsActive: true}
	if err := repo.Instructor.Create(context.Background(), ins); err != nil {
		t.Fatalf("建讲师失败: %v", err)
	}

	me, err := svc.Me(context.Background(), "u-4", email)
	if err != nil {
		t.Fatalf("Me 应成功: %v", err)
	}
	if me.InstructorID == nil || *me.InstructorID != ins.InstructorID {
		t.Errorf("应匹配到本地讲师，实际=%v", me.InstructorID)
	}

	// 首次匹配回填 auth_email，之后走 auth_email 直连
	saved, _ := repo.Instructor.GetByID(context.Background(), ins.InstructorID)
	if saved.AuthEmail == nil || *saved.AuthEmail != email {
		t.Errorf("期望回填 auth_email=%s，实际=%v", email, saved.AuthEmail)
	}

	again, err := svc.Me(context.Background(), "u-4", email)
	if err != nil {
		t.Fatalf("二次 Me 应成功: %v", err)
	}
	if again.InstructorID == nil || *again.InstructorID != ins.InstructorID {
		t.Errorf("回填后仍应匹配同一讲师，实际=%v", again.InstructorID)
	}
}

func TestAuthService_Me_NoInstructorMatch(t *testing.T) {
	svc, _ := setupTestAuthService()

	me, err := svc.Me(context.Background(), "u-5", "stranger@gmail.com")
	if err != nil {
		t.Fatalf("Me 应成功: %v", err)
	}
	if me.InstructorID != nil {
		t.Errorf("无对应讲师时 instructor_id 应为空，实际=%v", *me.InstructorID)
	}
	if me.Role != model.RoleInstructor {
		t.Errorf("期望角色 instructor，实际=%s", me.Role)
	}
}

// [自证通过] internal/service/auth_service_test.go
