package pkg

const (
	STRATEGY_BOTTOM_UP = "bottomup"
	STRATEGY_MEMOIZED  = "memoized"

	DEFAULT_MAX_RECURSION_DEPTH = 10000
)

// viper keys
const (
	CONFIG_API_PORT                        = "API_PORT"
	CONFIG_API_TIMEOUT                     = "API_TIMEOUT"
	CONFIG_HTTP_SERVER_READ_TIMEOUT        = "HTTP_SERVER_READ_TIMEOUT"
	CONFIG_HTTP_SERVER_WRITE_TIMEOUT       = "HTTP_SERVER_WRITE_TIMEOUT"
	CONFIG_HTTP_SERVER_IDLE_TIMEOUT        = "HTTP_SERVER_IDLE_TIMEOUT"
	CONFIG_HTTP_SERVER_READ_HEADER_TIMEOUT = "HTTP_SERVER_READ_HEADER_TIMEOUT"
	CONFIG_USE_RATE_LIMIT                  = "USE_RATE_LIMIT"
	CONFIG_RATE_LIMIT_RPS                  = "RATE_LIMIT_RPS"
	CONFIG_RATE_LIMIT_BURST                = "RATE_LIMIT_BURST"
	CONFIG_SOLVER_STRATEGY                 = "SOLVER_STRATEGY"
	CONFIG_SOLVER_MAX_RECURSION_DEPTH      = "SOLVER_MAX_RECURSION_DEPTH"
	CONFIG_CACHE_SIZE                      = "CACHE_SIZE"
	CONFIG_LOG_LEVEL                       = "LOG_LEVEL"
	CONFIG_WORKERS                         = "WORKERS"
)
