package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulamunoz06/gestionproyectos/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.ServiceCoordinator, cfg.Service)
	assert.Equal(t, config.BusRabbitMQ, cfg.BusDriver)
	assert.Equal(t, 16, cfg.BusPrefetch)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30, cfg.FailureRetentionDays)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVICE_NAME", "student")
	t.Setenv("BUS_DRIVER", "memory")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "students")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.ServiceStudent, cfg.Service)
	assert.Equal(t, config.BusMemory, cfg.BusDriver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Contains(t, cfg.DB.DSN(), "host=db.internal")
	assert.Contains(t, cfg.DB.DSN(), "dbname=students")
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{Service: config.ServiceCompany, BusDriver: config.BusMemory, BusPrefetch: 1}
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown service", func(c *config.Config) { c.Service = "billing" }},
		{"unknown bus", func(c *config.Config) { c.BusDriver = "kafka" }},
		{"zero prefetch", func(c *config.Config) { c.BusPrefetch = 0 }},
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := config.Load()
	assert.Error(t, err)
}
