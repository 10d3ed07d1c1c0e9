// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for every configuration key.
// Notes: Every key needs a default so environment overrides reach Unmarshal.

package config

import "github.com/spf13/viper"

// SetDefaults registers the default configuration on v.
func SetDefaults(v *viper.Viper) {
	// -- Panel --
	v.SetDefault("panel.dock", "right")
	v.SetDefault("panel.size", "30%")
	v.SetDefault("panel.fixed_size", []string{})
	v.SetDefault("panel.offset", "0")
	v.SetDefault("panel.min_size", 0)
	v.SetDefault("panel.max_size", 0)
	v.SetDefault("panel.fullscreen", false)
	v.SetDefault("panel.fixed", false)
	v.SetDefault("panel.append_to", "")
	v.SetDefault("panel.mask_color", "")
	v.SetDefault("panel.custom_class", "")
	v.SetDefault("panel.z_index", 0)
	v.SetDefault("panel.title", "")
	v.SetDefault("panel.easing", "smoothstep")
	v.SetDefault("panel.disable_animation", false)
	v.SetDefault("panel.ignore_escape", false)
	v.SetDefault("panel.allow_resize", true)
	v.SetDefault("panel.close_on_mask_click", true)
	v.SetDefault("panel.visible", false)

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- Demo --
	v.SetDefault("demo.file", "")
	v.SetDefault("demo.style", "monokai")
}
