package config

// EnvPrefix is intentionally empty; every variable carries the full
// WAREFRONT_ prefix in its envconfig tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "WAREFRONT_DB_DSN"
	EnvDBHost = "WAREFRONT_DB_HOST"
	EnvDBUser = "WAREFRONT_DB_USER"
	EnvDBName = "WAREFRONT_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
