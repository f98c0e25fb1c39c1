package importer

import "revenueplatform/internal/model"

// FileInfo 上传文件的基本信息（不读取内容）
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// RecordSource 将上传文件转换为收入记录
type RecordSource interface {
	Records(file FileInfo) ([]model.RevenueRecord, error)
}

var _ RecordSource = SampleSource{}

// SampleSource 忽略文件内容，固定返回 Q4 2024 替代数据
type SampleSource struct{}

// Records 实现 RecordSource
func (SampleSource) Records(FileInfo) ([]model.RevenueRecord, error) {
	return model.SubstituteRecords(), nil
}
