// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Viper-backed configuration for the slide-out demo and its panel.
// Usage: Load(path) or NewViper + flag binding + FromViper.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/framegrace/texelslide/slideout"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TEXELSLIDE_PANEL_DOCK.
const EnvPrefix = "TEXELSLIDE"

// Config is the full configuration tree.
type Config struct {
	Panel  PanelConfig  `mapstructure:"panel" yaml:"panel"`
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Demo   DemoConfig   `mapstructure:"demo" yaml:"demo"`
}

// PanelConfig mirrors slideout.Options with string-typed lengths.
type PanelConfig struct {
	Dock             string   `mapstructure:"dock" yaml:"dock"`
	Size             string   `mapstructure:"size" yaml:"size"`
	FixedSize        []string `mapstructure:"fixed_size" yaml:"fixed_size"`
	Offset           string   `mapstructure:"offset" yaml:"offset"`
	MinSize          int      `mapstructure:"min_size" yaml:"min_size"`
	MaxSize          int      `mapstructure:"max_size" yaml:"max_size"`
	Fullscreen       bool     `mapstructure:"fullscreen" yaml:"fullscreen"`
	Fixed            bool     `mapstructure:"fixed" yaml:"fixed"`
	AppendTo         string   `mapstructure:"append_to" yaml:"append_to"`
	MaskColor        string   `mapstructure:"mask_color" yaml:"mask_color"`
	CustomClass      string   `mapstructure:"custom_class" yaml:"custom_class"`
	ZIndex           int      `mapstructure:"z_index" yaml:"z_index"`
	Title            string   `mapstructure:"title" yaml:"title"`
	Easing           string   `mapstructure:"easing" yaml:"easing"`
	DisableAnimation bool     `mapstructure:"disable_animation" yaml:"disable_animation"`
	IgnoreEscape     bool     `mapstructure:"ignore_escape" yaml:"ignore_escape"`
	AllowResize      bool     `mapstructure:"allow_resize" yaml:"allow_resize"`
	CloseOnMaskClick bool     `mapstructure:"close_on_mask_click" yaml:"close_on_mask_click"`
	Visible          bool     `mapstructure:"visible" yaml:"visible"`
}

// LoggerConfig configures the rotating log file.
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// DemoConfig configures the demo host.
type DemoConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Style string `mapstructure:"style" yaml:"style"`
}

// NewViper returns a viper instance with defaults, environment overrides
// and the config file at path (or the default location) read in. A missing
// default file is not an error; a missing explicit file is.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if root, err := configRoot(); err == nil {
			v.AddConfigPath(root)
		}
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", describe(path), err)
		}
	}
	return v, nil
}

// FromViper decodes and validates v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if _, err := cfg.Panel.Options(); err != nil {
		return nil, fmt.Errorf("config: panel: %w", err)
	}
	return &cfg, nil
}

// Load is NewViper followed by FromViper.
func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// Options converts the panel section into slideout options.
func (p PanelConfig) Options() (slideout.Options, error) {
	dock, err := slideout.ParseSide(p.Dock)
	if err != nil {
		return slideout.Options{}, err
	}

	var size slideout.SizeSpec
	switch len(p.FixedSize) {
	case 0:
		if strings.TrimSpace(p.Size) != "" {
			if size, err = slideout.ParseSize(p.Size); err != nil {
				return slideout.Options{}, err
			}
		}
	case 1:
		size, err = slideout.ParseSize("[" + p.FixedSize[0] + "]")
	default:
		size, err = slideout.ParseSize(p.FixedSize...)
	}
	if err != nil {
		return slideout.Options{}, err
	}

	var offset slideout.Length
	if strings.TrimSpace(p.Offset) != "" {
		if offset, err = slideout.ParseLength(p.Offset); err != nil {
			return slideout.Options{}, err
		}
	}
	if p.MinSize < 0 || p.MaxSize < 0 {
		return slideout.Options{}, fmt.Errorf("%w: negative resize bound", slideout.ErrInvalidSize)
	}

	return slideout.Options{
		Dock:             dock,
		Size:             size,
		Offset:           offset,
		MinSize:          p.MinSize,
		MaxSize:          p.MaxSize,
		Fullscreen:       p.Fullscreen,
		Fixed:            p.Fixed,
		AppendTo:         p.AppendTo,
		MaskColor:        p.MaskColor,
		CustomClass:      p.CustomClass,
		ZIndex:           p.ZIndex,
		Title:            p.Title,
		Easing:           p.Easing,
		DisableAnimation: p.DisableAnimation,
		IgnoreEscape:     p.IgnoreEscape,
		AllowResize:      p.AllowResize,
		CloseOnMaskClick: p.CloseOnMaskClick,
		Visible:          p.Visible,
	}, nil
}

func describe(path string) string {
	if path != "" {
		return path
	}
	if p, err := DefaultConfigPath(); err == nil {
		return p
	}
	return configName
}
