package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type item struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);uniqueIndex"`
}

type itemNote struct {
	ID     uint64 `gorm:"primaryKey"`
	ItemID uint64 `gorm:"not null"`
	Item   item   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(Config{SQLiteFile: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { Close(db) })
	require.NoError(t, db.AutoMigrate(&item{}, &itemNote{}))
	return db
}

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ":memory:?_foreign_keys=on"},
		{"blogly.db", "blogly.db?_foreign_keys=on"},
		{"file:blogly.db?cache=shared", "file:blogly.db?cache=shared&_foreign_keys=on"},
		{"blogly.db?_fk=1", "blogly.db?_fk=1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.in))
		})
	}
}

func TestMysqlDSN(t *testing.T) {
	dsn, err := mysqlDSN("root:secret@tcp(127.0.0.1:3306)/blogly")
	require.NoError(t, err)
	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.True(t, cfg.ParseTime)
	assert.Equal(t, "utf8mb4", cfg.Params["charset"])
	assert.Equal(t, "blogly", cfg.DBName)

	_, err = mysqlDSN("this is not a dsn")
	assert.Error(t, err)
}

func TestIsDuplicateKey(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&item{Name: "go"}).Error)
	err := db.Create(&item{Name: "go"}).Error
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
	assert.True(t, IsDuplicateKey(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsForeignKeyViolation(err))

	assert.True(t, IsDuplicateKey(&mysql.MySQLError{Number: 1062}))
	assert.False(t, IsDuplicateKey(&mysql.MySQLError{Number: 1452}))
	assert.True(t, IsDuplicateKey(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.False(t, IsDuplicateKey(errors.New("boom")))
	assert.False(t, IsDuplicateKey(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	db := openTestDB(t)
	err := db.Create(&itemNote{ItemID: 42}).Error
	require.Error(t, err, "foreign keys must be enforced on SQLite")
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsDuplicateKey(err))

	assert.True(t, IsForeignKeyViolation(&mysql.MySQLError{Number: 1452}))
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(nil))
}
