package logger

const requestIDContextKey = "request_id"

// Levels accepted by Config.Level
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Formats accepted by Config.Format
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Environment names that change logger behaviour
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentCLI         = "cli"
)

// CLIServiceName tags records written by the craftplan command
const CLIServiceName = "craftplan"

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
