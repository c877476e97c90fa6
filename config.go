package sfml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings an application usually keeps in a file.
type Config struct {
	Context  ContextConfig  `yaml:"context"`
	Recorder RecorderConfig `yaml:"recorder"`
}

// ContextConfig holds the minimum OpenGL context requirements.
type ContextConfig struct {
	DepthBits         uint32 `yaml:"depth_bits,omitempty"`
	StencilBits       uint32 `yaml:"stencil_bits,omitempty"`
	AntiAliasingLevel uint32 `yaml:"antialiasing_level,omitempty"`
	MajorVersion      uint32 `yaml:"major_version,omitempty"`
	MinorVersion      uint32 `yaml:"minor_version,omitempty"`
	AttributeFlags    uint32 `yaml:"attribute_flags,omitempty"`
	SRGBCapable       bool   `yaml:"srgb_capable,omitempty"`
}

// RecorderConfig holds audio capture defaults.
type RecorderConfig struct {
	SampleRate         uint32        `yaml:"sample_rate,omitempty"`
	ChannelCount       uint32        `yaml:"channel_count,omitempty"`
	Device             string        `yaml:"device,omitempty"`
	ProcessingInterval time.Duration `yaml:"processing_interval,omitempty"`
}

// Settings returns the requirements as ContextSettings, for Context.Satisfies.
func (c ContextConfig) Settings() ContextSettings {
	return ContextSettings{
		DepthBits:         c.DepthBits,
		StencilBits:       c.StencilBits,
		AntiAliasingLevel: c.AntiAliasingLevel,
		MajorVersion:      c.MajorVersion,
		MinorVersion:      c.MinorVersion,
		AttributeFlags:    c.AttributeFlags,
		SRGBCapable:       c.SRGBCapable,
	}
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Context: ContextConfig{
			MajorVersion: 1,
			MinorVersion: 1,
		},
		Recorder: RecorderConfig{
			SampleRate:         DefaultSampleRate,
			ChannelCount:       1,
			ProcessingInterval: 100 * time.Millisecond,
		},
	}
}

// LoadConfig reads a YAML configuration from r. Fields absent from the input
// keep their DefaultConfig values.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFile reads the configuration at path if present, and returns
// DefaultConfig otherwise.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks values the foreign side would silently ignore.
func (c *Config) Validate() error {
	if n := c.Recorder.ChannelCount; n != 1 && n != 2 {
		return fmt.Errorf("recorder.channel_count must be 1 or 2 (got %d)", n)
	}
	if c.Recorder.SampleRate == 0 {
		return errors.New("recorder.sample_rate must be positive")
	}
	if c.Recorder.ProcessingInterval < 0 {
		return fmt.Errorf("recorder.processing_interval must not be negative (got %s)", c.Recorder.ProcessingInterval)
	}
	return nil
}
