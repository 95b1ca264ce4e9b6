package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		ConfigFileEnv,
		"DICEPOKER_HUMAN_NAME",
		"DICEPOKER_DEALER_NAME",
		"DICEPOKER_YES",
		"DICEPOKER_NO",
		"DICEPOKER_SEED",
		"DICEPOKER_LOG_LEVEL",
		"DICEPOKER_NO_COLOR",
		"DICEPOKER_TONE",
		"DICEPOKER_REDIS_ADDR",
		"DICEPOKER_REDIS_DB",
		"DICEPOKER_REDIS_TTL",
	} {
		s.unset(key)
	}
}

// unset clears key for the duration of the test
func (s *ConfigTestSuite) unset(key string) {
	s.T().Setenv(key, "")
	s.Require().NoError(os.Unsetenv(key))
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal(Default(), cfg)
	s.Equal("Player", cfg.HumanName)
	s.Equal("Dealer", cfg.DealerName)
	s.Equal("y", cfg.YesInput)
	s.Equal("n", cfg.NoInput)
	s.Equal("warn", cfg.LogLevel)
	s.Equal(time.Hour, cfg.Redis.TTL)
	s.False(cfg.UseRedis())
}

func (s *ConfigTestSuite) TestLoad_File() {
	s.T().Setenv(ConfigFileEnv, "testdata/config.yaml")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("Ada", cfg.HumanName)
	s.Equal("The House", cfg.DealerName)
	s.Equal("yes", cfg.YesInput)
	s.Equal("no", cfg.NoInput)
	s.Equal(int64(42), cfg.Seed)
	s.Equal("info", cfg.LogLevel)
	s.Equal("funny", cfg.Tone)
	s.Equal("localhost:6379", cfg.Redis.Addr)
	s.Equal(2, cfg.Redis.DB)
	s.Equal(30*time.Minute, cfg.Redis.TTL)
	s.True(cfg.UseRedis())
}

func (s *ConfigTestSuite) TestLoad_EnvironmentOverridesFile() {
	s.T().Setenv(ConfigFileEnv, "testdata/config.yaml")
	s.T().Setenv("DICEPOKER_DEALER_NAME", "Croupier")
	s.T().Setenv("DICEPOKER_SEED", "7")
	s.T().Setenv("DICEPOKER_NO_COLOR", "true")
	s.T().Setenv("DICEPOKER_REDIS_TTL", "5m")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("Ada", cfg.HumanName)
	s.Equal("Croupier", cfg.DealerName)
	s.Equal(int64(7), cfg.Seed)
	s.True(cfg.NoColor)
	s.Equal(5*time.Minute, cfg.Redis.TTL)
	s.Equal("localhost:6379", cfg.Redis.Addr)
}

func (s *ConfigTestSuite) TestLoad_MissingFile() {
	s.T().Setenv(ConfigFileEnv, "testdata/missing.yaml")

	_, err := Load()
	s.Error(err)
}

func (s *ConfigTestSuite) TestLoad_InvalidEnvironment() {
	s.T().Setenv("DICEPOKER_SEED", "lots")

	_, err := Load()
	s.Error(err)
}

func (s *ConfigTestSuite) TestLoad_SameAnswers() {
	s.T().Setenv("DICEPOKER_YES", "n")

	_, err := Load()
	s.Error(err)
}

func (s *ConfigTestSuite) TestLoadDotEnv() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("DICEPOKER_DEALER_NAME=Banker\n"), 0o600))

	s.Require().NoError(loadDotEnv(path))
	s.Equal("Banker", os.Getenv("DICEPOKER_DEALER_NAME"))

	cfg, err := Load()
	s.Require().NoError(err)
	s.Equal("Banker", cfg.DealerName)
}

func (s *ConfigTestSuite) TestLoadDotEnv_Missing() {
	s.NoError(loadDotEnv(filepath.Join(s.T().TempDir(), ".env")))
}

func (s *ConfigTestSuite) TestValidate() {
	cfg := Default()
	s.NoError(cfg.Validate())

	cfg.LogLevel = "loud"
	s.Error(cfg.Validate())

	cfg = Default()
	cfg.YesInput = ""
	s.Error(cfg.Validate())

	cfg = Default()
	cfg.Redis.TTL = -time.Second
	s.Error(cfg.Validate())
}

func (s *ConfigTestSuite) TestParseLogLevel() {
	cases := map[string]pterm.LogLevel{
		"trace":   pterm.LogLevelTrace,
		"DEBUG":   pterm.LogLevelDebug,
		"info":    pterm.LogLevelInfo,
		"":        pterm.LogLevelWarn,
		"warning": pterm.LogLevelWarn,
		"error":   pterm.LogLevelError,
		"off":     pterm.LogLevelDisabled,
	}

	for in, expected := range cases {
		level, err := ParseLogLevel(in)
		s.NoError(err, in)
		s.Equal(expected, level, in)
	}

	_, err := ParseLogLevel("verbose")
	s.Error(err)
}
