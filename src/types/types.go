package types

// Status is the verdict of a single check invocation. The numeric
// values follow the monitoring-plugin exit-code convention.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps the status onto the process exit code expected by the
// monitoring host: 0=OK, 1=WARNING, 2=CRITICAL, 3=UNKNOWN.
func (s Status) ExitCode() int {
	switch s {
	case StatusOK, StatusWarning, StatusCritical:
		return int(s)
	default:
		return 3
	}
}
