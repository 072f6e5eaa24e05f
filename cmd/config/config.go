package config

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for a config file that is neither toml nor yaml
var ErrUnknownFormat = errors.New("unknown config format")

// LoadFile parse the config from the file of the path
// The format is chosen by the extension and .env files beside it are loaded first
func LoadFile(path string, v interface{}) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	if err := LoadEnv(filepath.Join(filepath.Dir(path), ".env"), ".env"); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	return LoadReader(file, format, v)
}

// LoadEnv loads the .env files that exist; variables already set are kept
func LoadEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return errors.Wrapf(err, "load %v", p)
		}
	}
	return nil
}

// LoadString parse the config from the string
func LoadString(data string, format string, v interface{}) error {
	return LoadReader(bytes.NewReader([]byte(data)), format, v)
}

// LoadReader parse the config from the reader after expanding ${VAR} references
func LoadReader(r io.Reader, format string, v interface{}) error {
	bs, err := ioutil.ReadAll(r)
	if err != nil {
		return errors.WithStack(err)
	}
	data := os.ExpandEnv(string(bs))

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(data, v); err != nil {
			return errors.WithStack(err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(data), v); err != nil {
			return errors.WithStack(err)
		}
	default:
		return errors.Wrap(ErrUnknownFormat, format)
	}
	return nil
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrap(ErrUnknownFormat, path)
	}
}
