package config

import (
	"errors"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

var defaultCategories = []string{"Personal", "Work", "Ideas"}

type Settings struct {
	Storage StorageSettings `toml:"storage"`
	Logging LoggingSettings `toml:"logging"`
	UI      UISettings      `toml:"ui"`
}

type StorageSettings struct {
	// Location is shown and edited in the settings view but not consumed by
	// any I/O path; the actual files live under DataDir.
	Location string `toml:"location"`
	Backend  string `toml:"backend"`
}

type LoggingSettings struct {
	Level string `toml:"level"`
}

type UISettings struct {
	Categories []string `toml:"categories"`
}

func DefaultSettings() Settings {
	return Settings{
		Storage: StorageSettings{
			Backend: BackendFile,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
		UI: UISettings{
			Categories: append([]string{}, defaultCategories...),
		},
	}
}

func LoadSettings() (Settings, error) {
	path, err := ConfigPath()
	if err != nil {
		return Settings{}, err
	}
	return loadSettingsFromPath(path)
}

func (s Settings) Backend() string {
	backend := strings.ToLower(strings.TrimSpace(s.Storage.Backend))
	switch backend {
	case BackendBolt:
		return BackendBolt
	default:
		return BackendFile
	}
}

func (s Settings) StorageLocation() string {
	return strings.TrimSpace(s.Storage.Location)
}

func (s Settings) LogLevel() string {
	level := strings.TrimSpace(s.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

func (s Settings) Categories() []string {
	categories := normalizedList(s.UI.Categories)
	if len(categories) == 0 {
		categories = append([]string{}, defaultCategories...)
	}
	return categories
}

func loadSettingsFromPath(path string) (Settings, error) {
	settings := DefaultSettings()
	if err := readTOML(path, &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func normalizedList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := map[string]struct{}{}
	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
