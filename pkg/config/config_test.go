package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite tests configuration loading
type ConfigTestSuite struct {
	suite.Suite
}

// TestDefaults tests the built-in defaults with a clean environment
func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := Load("")
	s.Require().NoError(err)

	s.Equal(5000, cfg.Port)
	s.False(cfg.Debug)
	s.Equal("localhost", cfg.RedisHost)
	s.Equal(6379, cfg.RedisPort)
	s.Equal("http://localhost:8545", cfg.BlockchainRPCURL)
	s.Equal("http://localhost:5001", cfg.AgentAPIURL)
	s.Equal("http://localhost:5002", cfg.MeshAPIURL)
	s.Equal("0x...", cfg.TreasuryContract)
	s.Equal("0x...", cfg.XMRTTokenContract)
	s.Equal("dev-secret-key-change-in-production", cfg.SecretKey)
}

// TestEnvOverrides tests that environment variables take precedence
func (s *ConfigTestSuite) TestEnvOverrides() {
	s.T().Setenv("PORT", "8088")
	s.T().Setenv("DEBUG", "true")
	s.T().Setenv("REDIS_HOST", "redis.internal")
	s.T().Setenv("AGENT_API_URL", "http://orchestrator:9000")
	s.T().Setenv("SECRET_KEY", "prod-secret")

	cfg, err := Load("")
	s.Require().NoError(err)

	s.Equal(8088, cfg.Port)
	s.True(cfg.Debug)
	s.Equal("redis.internal", cfg.RedisHost)
	s.Equal("http://orchestrator:9000", cfg.AgentAPIURL)
	s.Equal("prod-secret", cfg.SecretKey)
}

// TestConfigFile tests loading from a yaml file
func (s *ConfigTestSuite) TestConfigFile() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "dashboard.yaml")
	content := []byte("port: 7100\nmesh_api_url: http://mesh.internal:5002\n")
	s.Require().NoError(os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	s.Require().NoError(err)

	s.Equal(7100, cfg.Port)
	s.Equal("http://mesh.internal:5002", cfg.MeshAPIURL)
	// Untouched keys keep their defaults
	s.Equal("localhost", cfg.RedisHost)
}

// TestEnvBeatsFile tests that env values win over file values
func (s *ConfigTestSuite) TestEnvBeatsFile() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "dashboard.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("port: 7100\n"), 0o600))

	s.T().Setenv("PORT", "7200")

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal(7200, cfg.Port)
}

// TestMissingFileTolerated tests that a nonexistent config file is not fatal
func (s *ConfigTestSuite) TestMissingFileTolerated() {
	cfg, err := Load(filepath.Join(s.T().TempDir(), "nope.yaml"))
	s.Require().NoError(err)
	s.Equal(5000, cfg.Port)
}

// TestMalformedFileRejected tests that a broken config file is fatal
func (s *ConfigTestSuite) TestMalformedFileRejected() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "dashboard.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("port: [unclosed\n"), 0o600))

	_, err := Load(path)
	s.Error(err)
}

// TestPortValidation tests the port range check
func (s *ConfigTestSuite) TestPortValidation() {
	s.T().Setenv("PORT", "99999")

	_, err := Load("")
	s.Error(err)
}

// TestRedisAddr tests the composed Redis address
func (s *ConfigTestSuite) TestRedisAddr() {
	cfg := &Config{RedisHost: "localhost", RedisPort: 6379, Port: 5000}
	s.Equal("localhost:6379", cfg.RedisAddr())
	s.Equal(":5000", cfg.ListenAddr())
}

// TestConfigSuite runs the config test suite
func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
