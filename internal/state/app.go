// Package state 应用状态：记录列表、当前面板与上传提示
//
// 展示层只读；所有修改都经过 App 的具名操作。
package state

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"revenueplatform/internal/log"
	"revenueplatform/internal/model"
	"revenueplatform/internal/store"
)

// ErrInvalidRecords 替换的记录未通过校验
var ErrInvalidRecords = errors.New("invalid revenue records")

// Snapshot 供 UI 渲染的状态快照
type Snapshot struct {
	View         model.View `json:"view"`
	UploadStatus string     `json:"uploadStatus"`
	Periods      []string   `json:"periods"`
	RecordCount  int        `json:"recordCount"`
}

// App 应用状态
type App struct {
	store  *store.Store
	logger *log.Logger

	mu           sync.RWMutex
	view         model.View
	uploadStatus string
}

// NewApp 创建应用状态并载入演示数据
func NewApp(st *store.Store, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.Discard()
	}
	a := &App{
		store:  st,
		logger: logger.WithComponent(log.ComponentState),
		view:   model.ViewOverview,
	}
	if err := st.ReplaceRecords(model.SampleRecords()); err != nil {
		return nil, fmt.Errorf("seed sample records: %w", err)
	}
	return a, nil
}

// ActiveView 当前面板
func (a *App) ActiveView() model.View {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.view
}

// SelectView 切换面板；未知名称返回 model.ErrUnknownView，状态不变
func (a *App) SelectView(name string) (model.View, error) {
	v, err := model.ParseView(name)
	if err != nil {
		return a.ActiveView(), err
	}

	a.mu.Lock()
	a.view = v
	a.mu.Unlock()

	a.logger.Debug("view selected", log.FieldView, string(v))
	return v, nil
}

// Records 当前记录列表（按显式顺序）
func (a *App) Records() ([]model.RevenueRecord, error) {
	return a.store.ListRecords()
}

// ReplaceRecords 整体替换记录列表
func (a *App) ReplaceRecords(records []model.RevenueRecord) error {
	if errs := model.ValidateRecords(records); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRecords, strings.Join(errs, "; "))
	}
	if err := a.store.ReplaceRecords(records); err != nil {
		return err
	}

	a.logger.Info("records replaced", log.FieldRecords, len(records), log.FieldPeriods, periodsOf(records))
	return nil
}

// UploadStatus 当前上传提示
func (a *App) UploadStatus() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.uploadStatus
}

// SetUploadStatus 更新上传提示
func (a *App) SetUploadStatus(msg string) {
	a.mu.Lock()
	a.uploadStatus = msg
	a.mu.Unlock()
}

// Reset 恢复演示数据与默认面板
func (a *App) Reset() error {
	if err := a.store.ReplaceRecords(model.SampleRecords()); err != nil {
		return err
	}

	a.mu.Lock()
	a.view = model.ViewOverview
	a.uploadStatus = ""
	a.mu.Unlock()

	a.logger.Info("state reset to sample records")
	return nil
}

// Snapshot 状态快照
func (a *App) Snapshot() (Snapshot, error) {
	records, err := a.Records()
	if err != nil {
		return Snapshot{}, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	return Snapshot{
		View:         a.view,
		UploadStatus: a.uploadStatus,
		Periods:      periodsOf(records),
		RecordCount:  len(records),
	}, nil
}

func periodsOf(records []model.RevenueRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Period)
	}
	return out
}
