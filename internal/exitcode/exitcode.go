package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	DBConnError     = 3
	CopyError       = 4
	TransformError  = 5
	PartialSuccess  = 6
	NotFound        = 7
	ExportError     = 8
)
