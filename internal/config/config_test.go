package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	content := `
[server]
http_port = 8084
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "frontdesk"
password = "secret"
dbname = "frontdesk_db"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/frontdesk.log"
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "hms-frontdesk-service"

[redis]
enabled = true
addr = "localhost:6379"
db = 0
ttl = 30

[pms_service]
url = "http://localhost:8081"
timeout = 5
`

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8084, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "frontdesk_db", cfg.Database.DBName)
	assert.Equal(t, "logs/frontdesk.log", cfg.Logs.File)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "hms-frontdesk-service", cfg.Metrics.ServiceName)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30, cfg.Redis.TTL)
	assert.Equal(t, "http://localhost:8081", cfg.PMSService.URL)
	assert.Equal(t, 5, cfg.PMSService.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5432,
		User:     "frontdesk",
		Password: "secret",
		DBName:   "frontdesk_db",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db.local port=5432 user=frontdesk password=secret dbname=frontdesk_db sslmode=disable",
		cfg.DSN(),
	)
}
