package constants

import "time"

const (
	ViperHTTPAddrKey            = "http.addr"
	ViperHTTPRequestTimeoutKey  = "http.request_timeout"
	ViperHTTPShutdownTimeoutKey = "http.shutdown_timeout"
	ViperHTTPCORSOriginsKey     = "http.cors_origins"

	ViperDBDriverKey          = "db.driver"
	ViperDBDSNKey             = "db.dsn"
	ViperDBConnectAttemptsKey = "db.connect_attempts"
	ViperDBMaxConnsKey        = "db.max_conns"

	ViperLogLevelKey = "log.level"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	DefaultHTTPAddr        = ":8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
	DefaultConnectAttempts = 5
	DefaultMaxConns        = 10
	DefaultLogLevel        = "info"
)

type ctxKey string

const (
	CtxKeyRequestID ctxKey = "request_id"

	HeaderRequestID = "X-Request-ID"
)
