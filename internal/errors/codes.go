package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrAlreadyRunning  ErrorCode = "already_running"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "invalid_configuration"
	ErrBindFlags     ErrorCode = "bind_flags_failed"
	ErrReadConfig    ErrorCode = "read_config_failed"

	// Initialization errors (fatal: the process exits before entering a loop)
	ErrInitFailed       ErrorCode = "initialization_failed"
	ErrSensorInit       ErrorCode = "sensor_init_failed"
	ErrHatInit          ErrorCode = "hat_init_failed"
	ErrDisplayInit      ErrorCode = "display_init_failed"
	ErrSupervisorInit   ErrorCode = "supervisor_init_failed"
	ErrSupervisorLaunch ErrorCode = "supervisor_launch_failed"

	// Per-tick errors (never terminate the loop)
	ErrTemperatureRead ErrorCode = "temperature_read_failed"
	ErrActuatorApply   ErrorCode = "actuator_apply_failed"
	ErrDisplayRender   ErrorCode = "display_render_failed"
	ErrSnapshotCollect ErrorCode = "snapshot_collect_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:         "Internal error occurred",
	ErrInvalidArgument:  "Invalid argument provided",
	ErrAlreadyRunning:   "Another instance is already running",
	ErrInvalidConfig:    "Invalid configuration",
	ErrBindFlags:        "Failed to bind flags",
	ErrReadConfig:       "Failed to read configuration",
	ErrInitFailed:       "Initialization failed",
	ErrSensorInit:       "Failed to initialize temperature sensor",
	ErrHatInit:          "Failed to initialize cooling hat",
	ErrDisplayInit:      "Failed to initialize display",
	ErrSupervisorInit:   "Failed to initialize supervisor",
	ErrSupervisorLaunch: "Failed to launch supervised process",
	ErrTemperatureRead:  "Failed to read temperature",
	ErrActuatorApply:    "Failed to apply cooling settings",
	ErrDisplayRender:    "Failed to render status display",
	ErrSnapshotCollect:  "Failed to collect system snapshot",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
