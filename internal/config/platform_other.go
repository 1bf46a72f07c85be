//go:build !windows

package config

// save paths are derived from %APPDATA%, which only Windows provides
const supportedPlatform = false
