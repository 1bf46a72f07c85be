//go:build windows

package config

const supportedPlatform = true
