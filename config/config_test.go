package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testYAML = `
env:
  serviceName: playlog
  log:
    level: info
http:
  port: 8080
mongo:
  uri: mongodb://localhost:27017
secretKey:
  access: ""
auth:
  protectDelete: false
`

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("AUTH_PROTECTDELETE", "true")
	t.Setenv("MONGO_OPERATIONTIMEOUT", "2s")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.True(t, cfg.Auth.ProtectDelete)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, 2*time.Second, cfg.Mongo.OperationTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultMongoDatabase, cfg.Mongo.Database)
	assert.Equal(t, defaultOperationTimeout, cfg.Mongo.OperationTimeout)
	assert.Equal(t, defaultConnectTimeout, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.ProtectDelete)
	assert.Equal(t, "info", cfg.Env.Log.Level)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Mongo: &MongoConfig{Database: "other", OperationTimeout: time.Second},
		Auth:  &AuthConfig{BcryptCost: 12, TokenTTL: 30 * time.Minute},
	}
	cfg.applyDefaults()

	assert.Equal(t, "other", cfg.Mongo.Database)
	assert.Equal(t, time.Second, cfg.Mongo.OperationTimeout)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
}
