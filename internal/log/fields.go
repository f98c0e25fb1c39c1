package log

// 结构化日志字段名
const (
	FieldComponent  = "component"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldClientIP   = "client_ip"
	FieldError      = "error"
	FieldUploadID   = "upload_id"
	FieldFilename   = "filename"
	FieldPeriods    = "periods"
	FieldView       = "view"
	FieldRecords    = "records"
)

// 组件名
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentState    = "state"
	ComponentImporter = "importer"
	ComponentExporter = "exporter"
	ComponentStore    = "store"
)
