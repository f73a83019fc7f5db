package constants

import "time"

// Request handling
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultTimeout        = 30 * time.Second
)

// Echo context keys
const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
)

// Token scopes
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Database pool settings
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Scheduling domain
const (
	// Day-of-week values are 0=Sunday through 6=Saturday.
	DayOfWeekMin = 0
	DayOfWeekMax = 6

	// Wall-clock times are zero-padded "HH:MM" strings; lexicographic
	// comparison matches numeric comparison for this layout.
	TimeOfDayLayout = "15:04"
	DateLayout      = "2006-01-02"

	// Upper bound on a matrix date range, inclusive of both endpoints.
	MatrixRangeMaxDays = 62
)

// Slot statuses
const (
	SlotStatusAvailable   = "available"
	SlotStatusUnavailable = "unavailable"
)

// Exception types
const (
	ExceptionTypeBlocked      = "blocked"
	ExceptionTypeOpenExtra    = "open_extra"
	ExceptionTypeSpecialHours = "special_hours"
)

// Exception sources
const (
	ExceptionSourceUser   = "user"
	ExceptionSourceSystem = "system"
)

// Redis key prefixes
const (
	RedisKeyResolutionCell = "resolution:cell:" // resolution:cell:<location_id>:<day>
)

// Cache TTLs
const (
	ResolutionCacheTTL = 10 * time.Minute
)

// Asynq task types
const (
	TaskExceptionPrune = "exception:prune"
	TaskExportMatrix   = "export:matrix"
)
