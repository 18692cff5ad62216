package consts

const (
	// AppName is the binary name used in usage text.
	AppName = "check_process_memory_usage"

	// CheckName is the service name prefixed to the status line,
	// following the monitoring-plugin SHORTNAME convention.
	CheckName = "PROCESS_MEMORY_USAGE"
)

// Injected at link time with -ldflags="-X ...".
var (
	AppVersion = "dev"
	BuildTime  string
	GitHash    string
)
