// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelslide configuration and logs.

package config

import (
	"os"
	"path/filepath"
)

const (
	appDir     = "texelslide"
	configName = "slideout"
	logName    = "slideout.log"
)

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appDir), nil
}

// DefaultConfigPath is the file read when no path is given.
func DefaultConfigPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configName+".yaml"), nil
}

// DefaultLogPath is the log file used when logger.file is empty.
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appDir, logName)
}
