package streamlit

import (
	"path/filepath"
	"strings"
)

// FileName is the settings file Streamlit looks for inside its configuration directory.
const FileName = "config.toml"

const (
	primaryColor             = "#008000"
	backgroundColor          = "#FFFFFF"
	secondaryBackgroundColor = "#F0F2F6"
	textColor                = "#000000"
)

// ServerSection holds the [server] table.
//
// Port is kept as the raw string taken from the environment so it is written
// back verbatim.
type ServerSection struct {
	Headless             bool   `toml:"headless"`
	Port                 string `toml:"port"`
	EnableCORS           bool   `toml:"enableCORS"`
	EnableXsrfProtection bool   `toml:"enableXsrfProtection"`
}

// ThemeSection holds the [theme] table.
type ThemeSection struct {
	PrimaryColor             string `toml:"primaryColor"`
	BackgroundColor          string `toml:"backgroundColor"`
	SecondaryBackgroundColor string `toml:"secondaryBackgroundColor"`
	TextColor                string `toml:"textColor"`
}

// Settings is the full content of the Streamlit settings file.
type Settings struct {
	Server ServerSection `toml:"server"`
	Theme  ThemeSection  `toml:"theme"`
}

// Defaults returns the fixed settings with the given port interpolated.
func Defaults(port string) Settings {
	return Settings{
		Server: ServerSection{
			Headless:             true,
			Port:                 port,
			EnableCORS:           false,
			EnableXsrfProtection: false,
		},
		Theme: ThemeSection{
			PrimaryColor:             primaryColor,
			BackgroundColor:          backgroundColor,
			SecondaryBackgroundColor: secondaryBackgroundColor,
			TextColor:                textColor,
		},
	}
}

// FilePath returns the settings file location inside dir.
func FilePath(dir string) string {
	return filepath.Join(strings.TrimSpace(dir), FileName)
}
