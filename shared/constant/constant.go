package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamPage     = "page"
	RequestParamPerPage  = "per_page"
	RequestParamStatus   = "status"
	RequestParamDate     = "date"
	RequestParamDateFrom = "date_from"
	RequestParamDateTo   = "date_to"
)

const (
	RequestParamID = "id"
)

const (
	DefaultValuePage    = 1
	DefaultValuePerPage = 15
)

const (
	FieldDate   = "date"
	FieldStatus = "status"
)

const (
	PqErrorCodeLockNotAvailable = "55P03"
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderRetryAfter         = "Retry-After"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "Server is preparing to shut down."
	ResponseErrorUnhealthy            = "Server is unhealthy."
	ResponseErrorRequestLimitExceeded = "Too many requests."
	ResponseErrorInternal             = "Internal server error."
	ResponseErrorNotFound             = "Resource not found."
	ResponseErrorMethodNotAllowed     = "Method not allowed."
)

const (
	ServerEnvDevelopment = "development"
)
