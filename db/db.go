package db

import (
	"log"
	"strings"

	"blogly/config"

	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	MySQLDSN     string
	PostgresDSN  string
	SQLiteFile   string
	MaxOpenConns int
	Echo         bool // log every statement
	PrepareStmt  bool
}

// ConfigFromEnv builds a Config out of the global settings
func ConfigFromEnv() Config {
	return Config{
		MySQLDSN:     config.MYSQL_DSN,
		PostgresDSN:  config.POSTGRES_DSN,
		SQLiteFile:   config.SQLITE_FILE,
		MaxOpenConns: config.DB_MAX_OPEN_CONNS,
		Echo:         config.SQL_ECHO,
		PrepareStmt:  true,
	}
}

// Open connects to MySQL, PostgreSQL or SQLite (in that order of preference, depending on what's configured).
// The returned handle is meant to be passed around explicitly, there is no package level instance.
func Open(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	isSQLite := false
	if cfg.MySQLDSN != "" {
		dsn, err := mysqlDSN(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		dialector = gormmysql.Open(dsn)
	} else if cfg.PostgresDSN != "" {
		dialector = postgres.Open(cfg.PostgresDSN)
	} else {
		dialector = sqlite.Open(sqliteDSN(cfg.SQLiteFile))
		isSQLite = true
	}
	gormConfig := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            cfg.PrepareStmt && !isSQLite,
	}
	if cfg.Echo {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if isSQLite {
		// One writer at a time, and an in-memory database lives only as long as its connection
		sqlDB.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	log.Printf("Database opened (%s)", dialector.Name())
	return db, nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err = sqlDB.Close(); err != nil {
		log.Printf("Closing database: %v", err)
	}
}

// mysqlDSN makes sure DATETIME columns are scanned into time.Time
func mysqlDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ParseTime = true
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	if _, exists := cfg.Params["charset"]; !exists {
		cfg.Params["charset"] = "utf8mb4"
	}
	return cfg.FormatDSN(), nil
}

// sqliteDSN turns on foreign key enforcement, which SQLite has off by default
func sqliteDSN(file string) string {
	if file == "" {
		file = ":memory:"
	}
	if strings.Contains(file, "_foreign_keys=") || strings.Contains(file, "_fk=") {
		return file
	}
	if strings.Contains(file, "?") {
		return file + "&_foreign_keys=on"
	}
	return file + "?_foreign_keys=on"
}
