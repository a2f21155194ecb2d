package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	MYSQL_DSN         = ""          // MySQL will be used if this is set
	POSTGRES_DSN      = ""          // PostgreSQL will be used if MYSQL_DSN is not configured and this is set
	SQLITE_FILE       = "blogly.db" // SQLite is the fallback when neither of the above is set
	BIND_ADDRESS      = "0.0.0.0:8080"
	TLS_DOMAINS       = "" // e.g. "example.com,example2.com"
	DEBUG_MODE        = true
	SQL_ECHO          = false // Log every SQL statement
	DB_MAX_OPEN_CONNS = 10    // Ignored for SQLite, which always uses a single connection
	SESSION_KEY       = "blogly session key, override me"
	CORS_ORIGINS      = "" // e.g. "https://a.example.com,https://b.example.com"
	DEFAULT_IMAGE_URL = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_1280.png"
)

func init() {
	Load()
}

// Load (re)reads all settings from the environment. Unset variables keep their current value.
func Load() {
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("POSTGRES_DSN", &POSTGRES_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvBool("SQL_ECHO", &SQL_ECHO)
	readEnvInt("DB_MAX_OPEN_CONNS", &DB_MAX_OPEN_CONNS)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvString("CORS_ORIGINS", &CORS_ORIGINS)
	readEnvString("DEFAULT_IMAGE_URL", &DEFAULT_IMAGE_URL)
}

// SplitList splits a comma separated setting, dropping empty entries
func SplitList(v string) (result []string) {
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}
	return
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
