package config

import "errors"

var (
	// ErrAppDataUnset is returned when the application-data root is missing from the environment.
	ErrAppDataUnset = errors.New("APPDATA environment variable is not set")
	// ErrUnsupportedPlatform is returned by CheckPlatform outside Windows.
	ErrUnsupportedPlatform = errors.New("this program is Windows-only, save files live under %APPDATA%")
)

// Layout locates the game's save directory.
type Layout struct {
	AppDataRoot string `yaml:"appDataRoot"`
	SaveSubdir  string `yaml:"saveSubdir"` // slash-separated, relative to the parent of AppDataRoot

	// Dir is the resolved save directory.
	Dir string `yaml:"-"`
}
