package importer

import (
	"fmt"
	"strings"
	"time"

	"revenueplatform/internal/log"
	"revenueplatform/internal/state"
	"revenueplatform/internal/store"
)

// 用户可见的上传提示
const (
	MessageInvalidFile = "Please upload a valid Excel file (.xlsx, .xls, or .csv)"
	MessageProcessing  = "Processing file..."
)

// DefaultExtensions 默认允许的扩展名
var DefaultExtensions = []string{".xlsx", ".xls", ".csv"}

// 事件类型
const (
	EventStart = "start"
	EventDone  = "done"
	EventError = "error"
)

// ProgressEvent 进度事件
type ProgressEvent struct {
	Type      string      `json:"type"`           // start/done/error
	Message   string      `json:"message"`        // 事件消息（即上传提示）
	Data      interface{} `json:"data,omitempty"` // 附加数据
	Timestamp time.Time   `json:"timestamp"`      // 时间戳
}

// ImportOptions 导入选项
type ImportOptions struct {
	Files []FileInfo
}

// ImportResult 导入完成的附加数据
type ImportResult struct {
	UploadID string   `json:"uploadId"`
	Filename string   `json:"filename"`
	Periods  []string `json:"periods"`
}

// Coordinator 上传协调器（模拟解析）
type Coordinator struct {
	app        *state.App
	store      *store.Store
	source     RecordSource
	delay      time.Duration
	extensions []string
	logger     *log.Logger
}

// Option 协调器选项
type Option func(*Coordinator)

// WithDelay 模拟处理耗时
func WithDelay(d time.Duration) Option {
	return func(c *Coordinator) { c.delay = d }
}

// WithSource 替换记录来源
func WithSource(src RecordSource) Option {
	return func(c *Coordinator) { c.source = src }
}

// WithExtensions 允许的扩展名
func WithExtensions(exts []string) Option {
	return func(c *Coordinator) {
		if len(exts) > 0 {
			c.extensions = exts
		}
	}
}

// WithLogger 日志器
func WithLogger(l *log.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l.WithComponent(log.ComponentImporter)
		}
	}
}

// NewCoordinator 创建上传协调器
func NewCoordinator(app *state.App, st *store.Store, opts ...Option) *Coordinator {
	c := &Coordinator{
		app:        app,
		store:      st,
		source:     SampleSource{},
		delay:      2 * time.Second,
		extensions: DefaultExtensions,
		logger:     log.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Accepts 文件名是否带允许的扩展名（区分大小写）
func (c *Coordinator) Accepts(name string) bool {
	for _, ext := range c.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Import 执行上传，返回进度通道
//
// 处理在后台完成，不随调用方离开而取消；通道在结束后关闭。
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progressChan := make(chan ProgressEvent, 4)

	file, ok := c.pick(opts.Files)
	if !ok {
		c.reject(opts.Files, progressChan)
		close(progressChan)
		return progressChan
	}

	c.app.SetUploadStatus(MessageProcessing)
	uploadID, err := c.store.CreateUploadLog(file.Name, file.Size, store.UploadStatusProcessing, MessageProcessing)
	if err != nil {
		c.logger.Error("create upload log failed", log.FieldError, err)
	}

	c.logger.Info("upload started", log.FieldUploadID, uploadID, log.FieldFilename, file.Name)
	c.sendProgress(progressChan, ProgressEvent{
		Type:    EventStart,
		Message: MessageProcessing,
		Data: map[string]interface{}{
			"uploadId": uploadID,
			"filename": file.Name,
		},
	})

	go func() {
		defer close(progressChan)
		if c.delay > 0 {
			time.Sleep(c.delay)
		}
		c.complete(uploadID, file, progressChan)
	}()

	return progressChan
}

func (c *Coordinator) pick(files []FileInfo) (FileInfo, bool) {
	for _, f := range files {
		if c.Accepts(f.Name) {
			return f, true
		}
	}
	return FileInfo{}, false
}

// reject 无合法文件：只更新提示，记录列表不变
func (c *Coordinator) reject(files []FileInfo, progressChan chan ProgressEvent) {
	c.app.SetUploadStatus(MessageInvalidFile)

	if len(files) > 0 {
		id, err := c.store.CreateUploadLog(files[0].Name, files[0].Size, store.UploadStatusRejected, MessageInvalidFile)
		if err != nil {
			c.logger.Error("create upload log failed", log.FieldError, err)
		} else if err := c.store.CompleteUploadLog(id, store.UploadStatusRejected, MessageInvalidFile); err != nil {
			c.logger.Error("complete upload log failed", log.FieldError, err)
		}
		c.logger.Warn("upload rejected", log.FieldFilename, files[0].Name)
	}

	c.sendProgress(progressChan, ProgressEvent{
		Type:    EventError,
		Message: MessageInvalidFile,
	})
}

// complete 延迟结束后替换记录列表（最后完成者生效）
func (c *Coordinator) complete(uploadID string, file FileInfo, progressChan chan ProgressEvent) {
	records, err := c.source.Records(file)
	if err == nil {
		err = c.app.ReplaceRecords(records)
	}
	if err != nil {
		msg := fmt.Sprintf("Failed to process %s: %v", file.Name, err)
		c.app.SetUploadStatus(msg)
		c.finishLog(uploadID, store.UploadStatusFailed, msg)
		c.logger.Error("upload failed", log.FieldUploadID, uploadID, log.FieldError, err)
		c.sendProgress(progressChan, ProgressEvent{Type: EventError, Message: msg})
		return
	}

	msg := "Successfully processed " + file.Name
	c.app.SetUploadStatus(msg)
	c.finishLog(uploadID, store.UploadStatusSucceeded, msg)

	periods := make([]string, 0, len(records))
	for _, r := range records {
		periods = append(periods, r.Period)
	}
	c.logger.Info("upload completed", log.FieldUploadID, uploadID, log.FieldPeriods, periods)

	c.sendProgress(progressChan, ProgressEvent{
		Type:    EventDone,
		Message: msg,
		Data: ImportResult{
			UploadID: uploadID,
			Filename: file.Name,
			Periods:  periods,
		},
	})
}

func (c *Coordinator) finishLog(uploadID, status, msg string) {
	if uploadID == "" {
		return
	}
	if err := c.store.CompleteUploadLog(uploadID, status, msg); err != nil {
		c.logger.Error("complete upload log failed", log.FieldUploadID, uploadID, log.FieldError, err)
	}
}

// sendProgress 发送进度事件（通道容量足够，不会阻塞）
func (c *Coordinator) sendProgress(ch chan ProgressEvent, event ProgressEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	ch <- event
}

// Drain 读完进度通道，返回最后一个事件
func Drain(ch <-chan ProgressEvent) ProgressEvent {
	var last ProgressEvent
	for evt := range ch {
		last = evt
	}
	return last
}
