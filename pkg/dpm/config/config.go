package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Stage is the deployment stage the menu runs in
type Stage string

const (
	StageLocal Stage = "local"
	StageDev   Stage = "dev"
	StageProd  Stage = "prod"
)

var (
	ErrStageMissing = errors.New("STAGE is not set")
	ErrStageInvalid = errors.New("STAGE is invalid, set it to local, dev or prod")
)

// Stages lists every accepted stage
func Stages() []Stage {
	return []Stage{StageLocal, StageDev, StageProd}
}

// ParseStage validates a raw stage value
func ParseStage(raw string) (Stage, error) {
	if raw == "" {
		return "", ErrStageMissing
	}
	for _, s := range Stages() {
		if Stage(raw) == s {
			return s, nil
		}
	}
	return "", errors.Wrapf(ErrStageInvalid, "got %q", raw)
}

// Config is resolved once at startup and passed by pointer
type Config struct {
	Stage   Stage
	Version string
	Lang    string
}

func (c *Config) IsLocal() bool { return c.Stage == StageLocal }
func (c *Config) IsDev() bool   { return c.Stage == StageDev }
func (c *Config) IsProd() bool  { return c.Stage == StageProd }

// DisplayVersion returns the version string, "dev" when none was provided
func (c *Config) DisplayVersion() string {
	if strings.TrimSpace(c.Version) == "" {
		return "dev"
	}
	return c.Version
}

// Load reads stage, version and language from v
func Load(v *viper.Viper) (*Config, error) {
	stage, err := ParseStage(strings.TrimSpace(v.GetString("stage")))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	return &Config{
		Stage:   stage,
		Version: v.GetString("version"),
		Lang:    v.GetString("lang"),
	}, nil
}

// FromEnv binds STAGE, VERSION and LANG and loads the configuration
func FromEnv() (*Config, error) {
	v := viper.New()
	for key, env := range map[string]string{
		"stage":   "STAGE",
		"version": "VERSION",
		"lang":    "LANG",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, errors.Wrapf(err, "failed to bind %s", env)
		}
	}
	return Load(v)
}
