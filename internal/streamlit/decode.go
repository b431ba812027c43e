package streamlit

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type rawServer struct {
	Headless             bool `toml:"headless"`
	Port                 any  `toml:"port"`
	EnableCORS           bool `toml:"enableCORS"`
	EnableXsrfProtection bool `toml:"enableXsrfProtection"`
}

type rawSettings struct {
	Server rawServer    `toml:"server"`
	Theme  ThemeSection `toml:"theme"`
}

// Decode parses settings file content. The port is returned in the textual
// form it would be rendered with.
func Decode(data []byte) (Settings, error) {
	var raw rawSettings
	decoder := toml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&raw); err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", FileName, err)
	}
	return Settings{
		Server: ServerSection{
			Headless:             raw.Server.Headless,
			Port:                 portString(raw.Server.Port),
			EnableCORS:           raw.Server.EnableCORS,
			EnableXsrfProtection: raw.Server.EnableXsrfProtection,
		},
		Theme: raw.Theme,
	}, nil
}

// ReadFile loads and decodes the settings file at path.
func ReadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data)
}

func portString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Entry is one key of a settings document, in display form.
type Entry struct {
	Section string
	Key     string
	Value   string
}

// Entries lists every key in a settings document, including sections and
// keys the launcher does not write. Sections and keys are sorted; nested
// tables are flattened into dotted section names.
func Entries(data []byte) ([]Entry, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	var entries []Entry
	collectEntries(&entries, "", doc)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Section != entries[j].Section {
			return entries[i].Section < entries[j].Section
		}
		return entries[i].Key < entries[j].Key
	})
	return entries, nil
}

// ReadEntries loads the settings file at path and lists its keys.
func ReadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Entries(data)
}

func collectEntries(dst *[]Entry, section string, table map[string]any) {
	for key, value := range table {
		if nested, ok := value.(map[string]any); ok {
			name := key
			if section != "" {
				name = section + "." + key
			}
			collectEntries(dst, name, nested)
			continue
		}
		*dst = append(*dst, Entry{Section: section, Key: key, Value: entryValue(value)})
	}
}

func entryValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
