package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"citycast/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPostgresDSN(t *testing.T) {
	tests := []struct {
		name    string
		config  config.DatabaseConfig
		want    string
		wantErr bool
	}{
		{
			name:   "password and sslmode",
			config: config.DatabaseConfig{Host: "db", Port: "5432", User: "citycast", Password: "s3cr3t", Name: "citycast", SSLMode: "disable"},
			want:   "postgres://citycast:s3cr3t@db:5432/citycast?sslmode=disable",
		},
		{
			name:   "no password",
			config: config.DatabaseConfig{Host: "db", Port: "5432", User: "citycast", Name: "citycast", SSLMode: "require"},
			want:   "postgres://citycast@db:5432/citycast?sslmode=require",
		},
		{
			name:   "no sslmode",
			config: config.DatabaseConfig{Host: "db", Port: "5432", User: "citycast", Name: "citycast"},
			want:   "postgres://citycast@db:5432/citycast",
		},
		{
			name:   "password is escaped",
			config: config.DatabaseConfig{Host: "db", Port: "5432", User: "citycast", Password: "p@ss/word", Name: "citycast"},
			want:   "postgres://citycast:p%40ss%2Fword@db:5432/citycast",
		},
		{name: "missing host", config: config.DatabaseConfig{Port: "5432", User: "u", Name: "n"}, wantErr: true},
		{name: "missing port", config: config.DatabaseConfig{Host: "db", User: "u", Name: "n"}, wantErr: true},
		{name: "missing user", config: config.DatabaseConfig{Host: "db", Port: "5432", Name: "n"}, wantErr: true},
		{name: "missing name", config: config.DatabaseConfig{Host: "db", Port: "5432", User: "u"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildPostgresDSN(tt.config)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIncompleteConfig)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPostgres(t *testing.T) {
	conf := config.DatabaseConfig{
		Host:               "db",
		Port:               "5432",
		User:               "citycast",
		Password:           "s3cr3t",
		Name:               "citycast",
		MaxOpenConns:       10,
		MaxIdleConns:       5,
		ConnMaxLifetimeSec: 300,
	}
	ctx := context.Background()

	stubOpen := func(t *testing.T, db *sql.DB, err error) {
		orig := sqlOpen
		sqlOpen = func(string, string) (*sql.DB, error) { return db, err }
		t.Cleanup(func() { sqlOpen = orig })
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		stubOpen(t, db, nil)

		mock.ExpectPing()

		got, err := NewPostgres(ctx, conf)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, 10, got.Stats().MaxOpenConnections)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("open error", func(t *testing.T) {
		stubOpen(t, nil, errors.New("open error"))

		got, err := NewPostgres(ctx, conf)
		assert.ErrorContains(t, err, "sql open: open error")
		assert.Nil(t, got)
	})

	t.Run("ping error", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		stubOpen(t, db, nil)

		mock.ExpectPing().WillReturnError(errors.New("ping failed"))

		got, err := NewPostgres(ctx, conf)
		assert.ErrorContains(t, err, "db ping: ping failed")
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("incomplete config", func(t *testing.T) {
		got, err := NewPostgres(ctx, config.DatabaseConfig{})
		assert.ErrorIs(t, err, ErrIncompleteConfig)
		assert.Nil(t, got)
	})
}
