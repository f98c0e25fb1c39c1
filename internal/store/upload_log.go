package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// 上传状态
const (
	UploadStatusProcessing = "processing"
	UploadStatusSucceeded  = "succeeded"
	UploadStatusRejected   = "rejected"
	UploadStatusFailed     = "failed"
)

// UploadLog 上传日志
type UploadLog struct {
	ID          string     `json:"id"`
	Filename    string     `json:"filename"`
	FileSize    int64      `json:"fileSize"`
	Status      string     `json:"status"`
	Message     string     `json:"message"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// CreateUploadLog 创建上传日志，返回日志 ID
func (s *Store) CreateUploadLog(filename string, fileSize int64, status, message string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO upload_logs (id, filename, file_size, status, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, filename, fileSize, status, message, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to create upload log: %w", err)
	}
	return id, nil
}

// CompleteUploadLog 更新上传日志为终态
func (s *Store) CompleteUploadLog(id, status, message string) error {
	res, err := s.db.Exec(`
		UPDATE upload_logs SET
			status = ?,
			message = ?,
			completed_at = ?
		WHERE id = ?
	`, status, message, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update upload log: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("upload log not found: %s", id)
	}
	return nil
}

// ListUploadLogs 最近的上传日志（按创建时间倒序）
func (s *Store) ListUploadLogs(limit int) ([]UploadLog, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, filename, file_size, status, message, created_at, completed_at
		FROM upload_logs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query upload logs failed: %w", err)
	}
	defer rows.Close()

	out := []UploadLog{}
	for rows.Next() {
		var it UploadLog
		var completed sql.NullTime
		if err := rows.Scan(&it.ID, &it.Filename, &it.FileSize, &it.Status, &it.Message, &it.CreatedAt, &completed); err != nil {
			return nil, fmt.Errorf("scan upload log failed: %w", err)
		}
		if completed.Valid {
			t := completed.Time
			it.CompletedAt = &t
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate upload logs failed: %w", err)
	}
	return out, nil
}
