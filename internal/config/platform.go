package config

// CheckPlatform refuses platforms whose conventions Resolve does not follow.
func CheckPlatform() error {
	if !supportedPlatform {
		return ErrUnsupportedPlatform
	}
	return nil
}
