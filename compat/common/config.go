package common

import (
	"errors"
	"io/fs"
	"os"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/stackwalk/package/span"
	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = ".local/config.yml"

// ConfigPath resolves an empty path from STACKWALK_CONFIG_PATH, then the
// default location.
func ConfigPath(path string) string {
	if path != "" {
		return path
	}
	if path = os.Getenv("STACKWALK_CONFIG_PATH"); path != "" {
		return path
	}

	return DefaultConfigPath
}

// Config reads and validates a yaml configuration. A missing file yields the
// zero configuration.
func Config[T any](path string) (*T, error) {
	// * parse arguments
	path = ConfigPath(path)

	// * declare struct
	config := new(T)

	// * read config
	yml, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, span.NewError(nil, "unable to read configuration file", err)
	}

	// * parse config
	if err := yaml.Unmarshal(Template(yml), config); err != nil {
		return nil, span.NewError(nil, "unable to parse configuration file", err)
	}

	// * validate config
	if err := gut.Validate(config); err != nil {
		return nil, span.NewError(nil, "invalid configuration", err)
	}

	return config, nil
}
