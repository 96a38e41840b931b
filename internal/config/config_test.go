package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("DATASET_SOURCE", DatasetSourcePostgres)
	t.Setenv("DATASET_TABLE", "rounds")
	t.Setenv("AUTH_USERS", "admin@funding.io|hash1|1,viewer@funding.io|hash2|3")
	t.Setenv("AUTH_TOKEN_TTL", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://dashboard.funding.io")
	t.Setenv("DATABASE_USER", "funding")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("DATABASE_URL", "db:5432/funding")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, DatasetSourcePostgres, cfg.Dataset.Source)
	assert.Equal(t, "rounds", cfg.Dataset.Table)
	assert.Equal(t, []string{"admin@funding.io|hash1|1", "viewer@funding.io|hash2|3"}, cfg.Auth.Users)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://dashboard.funding.io"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, "postgres://funding:secret@db:5432/funding", cfg.Database.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxIdleTime)
}

func TestNewConfig_AuthWithoutSecret(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		wantErr bool
	}{
		{
			name: "Autenticação habilitada sem AUTH_SECRET",
			setup: func(t *testing.T) {
				t.Setenv("AUTH_ENABLED", "true")
			},
			wantErr: true,
		},
		{
			name: "Autenticação habilitada com AUTH_SECRET",
			setup: func(t *testing.T) {
				t.Setenv("AUTH_ENABLED", "true")
				t.Setenv("AUTH_SECRET", "s3cr3t-do-ambiente")
			},
		},
		{
			name:  "Autenticação desabilitada não exige segredo",
			setup: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			cfg, err := NewConfig()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, "your_secret_key", cfg.Auth.Secret)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "CSV com caminho",
			config: Config{Dataset: Dataset{Source: DatasetSourceCSV, Path: "data.csv"}},
		},
		{
			name:    "CSV sem caminho",
			config:  Config{Dataset: Dataset{Source: DatasetSourceCSV}},
			wantErr: true,
		},
		{
			name:    "Postgres sem tabela",
			config:  Config{Dataset: Dataset{Source: DatasetSourcePostgres}},
			wantErr: true,
		},
		{
			name:   "HTTP com URL",
			config: Config{Dataset: Dataset{Source: DatasetSourceHTTP, URL: "https://example.com/startups.csv"}},
		},
		{
			name:    "HTTP sem URL",
			config:  Config{Dataset: Dataset{Source: DatasetSourceHTTP}},
			wantErr: true,
		},
		{
			name:    "Origem desconhecida",
			config:  Config{Dataset: Dataset{Source: "s3", Path: "x"}},
			wantErr: true,
		},
		{
			name: "Autenticação habilitada sem segredo",
			config: Config{
				Dataset: Dataset{Source: DatasetSourceCSV, Path: "data.csv"},
				Auth:    Auth{Enabled: true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
