package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEventRelayConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *EventRelayConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
relay:
  consumer: "test-relay"
  start_after: 1000
  batch_size: 50
  poll_interval: "250ms"
  cursor_save_freq: 20
  cursor_save_delay: "2s"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EventRelayConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "testpass", cfg.Database.Password)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "test-relay", cfg.Relay.Consumer)
				assert.Equal(t, uint64(1000), cfg.Relay.StartAfter)
				assert.Equal(t, 50, cfg.Relay.BatchSize)
				assert.Equal(t, 250*time.Millisecond, cfg.Relay.PollInterval)
				assert.Equal(t, uint64(20), cfg.Relay.CursorSaveFreq)
				assert.Equal(t, 2*time.Second, cfg.Relay.CursorSaveDelay)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EventRelayConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "JOURNAL_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "event-relay", cfg.Relay.Consumer)
				assert.Equal(t, uint64(0), cfg.Relay.StartAfter)
				assert.Equal(t, 100, cfg.Relay.BatchSize)
				assert.Equal(t, 500*time.Millisecond, cfg.Relay.PollInterval)
				assert.Equal(t, uint64(100), cfg.Relay.CursorSaveFreq)
				assert.Equal(t, 5*time.Second, cfg.Relay.CursorSaveDelay)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadEventRelayConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadEventBridgeConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *EventBridgeConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: false
sentry_dsn: "https://sentry.example.com"
nats:
  url: "nats://localhost:4222"
  stream_name: "CUSTOM_STREAM"
  consumer_name: "custom-consumer"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-connection"
  ack_wait: "60s"
  max_deliver: 5
temporal:
  host_port: "temporal.example.com:7233"
  namespace: "production"
  webhook_task_queue: "custom-queue"
  max_concurrent_activity_execution_size: 100
  worker_activities_per_second: 100
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EventBridgeConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "CUSTOM_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, "custom-consumer", cfg.NATS.ConsumerName)
				assert.Equal(t, 60*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 5, cfg.NATS.MaxDeliver)
				assert.Equal(t, "temporal.example.com:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "production", cfg.Temporal.Namespace)
				assert.Equal(t, "custom-queue", cfg.Temporal.WebhookTaskQueue)
				assert.Equal(t, 100, cfg.Temporal.MaxConcurrentActivityExecutionSize)
				assert.Equal(t, 100.0, cfg.Temporal.WorkerActivitiesPerSecond)
			},
		},
		{
			name: "config with defaults",
			configFile: `
nats:
  url: "nats://localhost:4222"
temporal:
  host_port: "localhost:7233"
  namespace: "default"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EventBridgeConfig) {
				// Check defaults
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, "2s", cfg.NATS.ReconnectWait.String())
				assert.Equal(t, "JOURNAL_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "event-bridge", cfg.NATS.ConsumerName)
				assert.Equal(t, 30*time.Second, cfg.NATS.AckWait)
				assert.Equal(t, 3, cfg.NATS.MaxDeliver)
				assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "default", cfg.Temporal.Namespace)
				assert.Equal(t, "webhook-delivery", cfg.Temporal.WebhookTaskQueue)
				assert.Equal(t, 50, cfg.Temporal.MaxConcurrentActivityExecutionSize)
				assert.Equal(t, 50.0, cfg.Temporal.WorkerActivitiesPerSecond)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				nats:
				  url: localhost
				  max_deliver: invalid
			`,
			expectError: true, // Invalid max_deliver should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadEventBridgeConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadWebhookWorkerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *WebhookWorkerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
temporal:
  host_port: "localhost:7233"
  namespace: "default"
  webhook_task_queue: "custom-webhook-queue"
  max_concurrent_activity_execution_size: 20
  worker_activities_per_second: 20
  max_concurrent_activity_task_pollers: 5
webhook_timeout: "45s"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *WebhookWorkerConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "testpass", cfg.Database.Password)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "default", cfg.Temporal.Namespace)
				assert.Equal(t, "custom-webhook-queue", cfg.Temporal.WebhookTaskQueue)
				assert.Equal(t, 20, cfg.Temporal.MaxConcurrentActivityExecutionSize)
				assert.Equal(t, 20.0, cfg.Temporal.WorkerActivitiesPerSecond)
				assert.Equal(t, 5, cfg.Temporal.MaxConcurrentActivityTaskPollers)
				assert.Equal(t, 45*time.Second, cfg.WebhookTimeout)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *WebhookWorkerConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "localhost:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "default", cfg.Temporal.Namespace)
				assert.Equal(t, "webhook-delivery", cfg.Temporal.WebhookTaskQueue)
				assert.Equal(t, 50, cfg.Temporal.MaxConcurrentActivityExecutionSize)
				assert.Equal(t, 50.0, cfg.Temporal.WorkerActivitiesPerSecond)
				assert.Equal(t, 10, cfg.Temporal.MaxConcurrentActivityTaskPollers)
				assert.Equal(t, 30*time.Second, cfg.WebhookTimeout)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadWebhookWorkerConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 20
  write_timeout: 20
  idle_timeout: 180
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
auth:
  jwt_public_key: "test-public-key"
  api_keys:
    - "key1"
    - "key2"
ratelimiter:
  redis_addr: "localhost:6380"
  redis_key_prefix: "test:limiter:"
  enable_local_fallback: true
  local_fallback_multiplier: 0.75
  max_workers: 20
  max_queue_size: 500
  scopes:
    submit:
      requests_per_second: 50
      burst: 100
      max_queue_time: "30s"
    register:
      requests_per_second: 5
uri:
  ipfs_gateways:
    - "https://ipfs.io"
    - "https://gateway.pinata.cloud"
  arweave_gateways:
    - "https://arweave.net"
denylist_path: "/path/to/denylist.json"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 20, cfg.Server.ReadTimeout)
				assert.Equal(t, 180, cfg.Server.IdleTimeout)
				assert.Equal(t, "test-public-key", cfg.Auth.JWTPublicKey)
				assert.Len(t, cfg.Auth.APIKeys, 2)
				assert.Equal(t, "localhost:6380", cfg.RateLimiter.RedisAddr)
				assert.Equal(t, "test:limiter:", cfg.RateLimiter.RedisKeyPrefix)
				assert.True(t, cfg.RateLimiter.EnableLocalFallback)
				assert.Equal(t, 0.75, cfg.RateLimiter.LocalFallbackMultiplier)
				assert.Equal(t, 20, cfg.RateLimiter.MaxWorkers)
				assert.Equal(t, 500, cfg.RateLimiter.MaxQueueSize)
				assert.Len(t, cfg.RateLimiter.Scopes, 2)
				assert.Equal(t, 50, cfg.RateLimiter.Scopes["submit"].RequestsPerSecond)
				assert.Equal(t, 100, cfg.RateLimiter.Scopes["submit"].Burst)
				assert.Equal(t, 30*time.Second, cfg.RateLimiter.Scopes["submit"].MaxQueueTime)
				assert.Equal(t, 5, cfg.RateLimiter.Scopes["register"].RequestsPerSecond)
				assert.Len(t, cfg.URI.IPFSGateways, 2)
				assert.Len(t, cfg.URI.ArweaveGateways, 1)
				assert.Equal(t, "/path/to/denylist.json", cfg.DenylistPath)
			},
		},
		{
			name:        "missing config file - should work with env vars",
			configFile:  "",
			expectError: false, // API config allows missing config file
			validate: func(t *testing.T, cfg *APIConfig) {
				// Should use defaults
				assert.NotNil(t, cfg)
				assert.False(t, cfg.Debug)                  // default
				assert.Equal(t, "0.0.0.0", cfg.Server.Host) // default
				assert.Equal(t, 8080, cfg.Server.Port)      // default
				assert.Equal(t, "localhost:6379", cfg.RateLimiter.RedisAddr)
				assert.True(t, cfg.RateLimiter.EnableLocalFallback)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)                   // default
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)  // default
				assert.Equal(t, 8080, cfg.Server.Port)       // default
				assert.Equal(t, 10, cfg.Server.ReadTimeout)  // default
				assert.Equal(t, 10, cfg.Server.WriteTimeout) // default
				assert.Equal(t, 120, cfg.Server.IdleTimeout) // default
				assert.Len(t, cfg.URI.IPFSGateways, 2)
				assert.Len(t, cfg.URI.ArweaveGateways, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var configFile string

			if tt.configFile != "" {
				tmpDir := t.TempDir()
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				// For missing config file, use empty string to let viper search in config/ directory
				// or use a non-existent path that viper will handle gracefully
				configFile = ""
			}

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadDeployConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *DeployConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: false
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
genesis_path: "/path/to/genesis.json"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *DeployConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "testuser", cfg.Database.User)
				assert.Equal(t, "testpass", cfg.Database.Password)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, "/path/to/genesis.json", cfg.GenesisPath)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
`,
			expectError: false,
			validate: func(t *testing.T, cfg *DeployConfig) {
				// Check defaults
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Empty(t, cfg.GenesisPath)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true, // Invalid port should cause unmarshal error
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadDeployConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "complete config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "with special characters in password",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "p@ssw0rd!",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=testuser password=p@ssw0rd! dbname=testdb sslmode=disable",
		},
		{
			name: "minimal config",
			config: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "user",
				Password: "pass",
				DBName:   "db",
				SSLMode:  "disable",
			},
			expected: "host=localhost port=5432 user=user password=pass dbname=db sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.config.DSN()
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestDatabaseConfig_ReadDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name: "read replica with its own port",
			config: DatabaseConfig{
				Host:     "primary",
				Port:     5432,
				ReadHost: "replica",
				ReadPort: 5433,
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "require",
			},
			expected: "host=replica port=5433 user=testuser password=testpass dbname=testdb sslmode=require",
		},
		{
			name: "read port falls back to primary port",
			config: DatabaseConfig{
				Host:     "primary",
				Port:     5432,
				ReadHost: "replica",
				User:     "testuser",
				Password: "testpass",
				DBName:   "testdb",
				SSLMode:  "disable",
			},
			expected: "host=replica port=5432 user=testuser password=testpass dbname=testdb sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := tt.config.ReadDSN()
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	err := os.MkdirAll(envDir, 0750)
	require.NoError(t, err)

	// Create .env file with environment variables
	// Note: Viper uses FF_MINTGATE_ prefix, so env vars need the prefix
	envFile := filepath.Join(envDir, ".env")
	envContent := `FF_MINTGATE_DEBUG=true
FF_MINTGATE_DATABASE_HOST=env-host
FF_MINTGATE_DATABASE_PORT=3306
FF_MINTGATE_DATABASE_USER=env-user
FF_MINTGATE_DATABASE_PASSWORD=env-pass
FF_MINTGATE_DATABASE_DBNAME=env-db
FF_MINTGATE_DATABASE_SSLMODE=require
`
	err = os.WriteFile(envFile, []byte(envContent), 0600)
	require.NoError(t, err)

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
  user: file-user
  password: file-pass
  dbname: file-db
  sslmode: disable
`

	err = os.WriteFile(configPath, []byte(configFile), 0600)
	require.NoError(t, err)

	// Load config with envPath pointing to the temporary env directory
	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify that environment variables from .env file override config file values
	// The .env file is loaded via godotenv.Overload, which sets actual environment variables
	// Viper's AutomaticEnv then picks them up with FF_MINTGATE_ prefix
	assert.True(t, cfg.Debug)                          // Should be true from .env file, not false from config
	assert.Equal(t, "env-host", cfg.Database.Host)     // Should be from .env file
	assert.Equal(t, 3306, cfg.Database.Port)           // Should be from .env file
	assert.Equal(t, "env-user", cfg.Database.User)     // Should be from .env file
	assert.Equal(t, "env-pass", cfg.Database.Password) // Should be from .env file
	assert.Equal(t, "env-db", cfg.Database.DBName)     // Should be from .env file
	assert.Equal(t, "require", cfg.Database.SSLMode)   // Should be from .env file
}
