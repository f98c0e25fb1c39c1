package model

import (
	"errors"
	"strings"
)

// View 当前展示的面板
type View string

const (
	ViewOverview View = "overview" // 概览
	ViewUpload   View = "upload"   // 上传数据
	ViewCharts   View = "charts"   // 图表
)

// ErrUnknownView 未知面板
var ErrUnknownView = errors.New("unknown view")

// Views 侧边栏中的面板顺序
func Views() []View {
	return []View{ViewOverview, ViewUpload, ViewCharts}
}

// ParseView 解析面板名称
func ParseView(name string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Views() {
		if v == known {
			return v, nil
		}
	}
	return "", ErrUnknownView
}

// Title 面板标题
func (v View) Title() string {
	switch v {
	case ViewOverview:
		return "Overview"
	case ViewUpload:
		return "Upload Data"
	case ViewCharts:
		return "Revenue Charts"
	default:
		return string(v)
	}
}
