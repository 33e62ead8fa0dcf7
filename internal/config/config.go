package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	EnvPrefix = "STATLOOM"
	dirName   = ".statloom"
)

// Global configuration structure.
type Global struct {
	// Default data source when neither --file nor --dataset is given.
	DataFile  string `mapstructure:"data_file" yaml:"data_file"`
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter" validate:"len=1"`
	Sheet     string `mapstructure:"sheet" yaml:"sheet"`

	OutputFormat string `mapstructure:"output_format" yaml:"output_format" validate:"oneof=text json yaml"`
	Color        bool   `mapstructure:"color" yaml:"color"`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" validate:"oneof=console json"`

	// Upper bound on goroutines for all-league comparison; 0 means GOMAXPROCS.
	Workers     int    `mapstructure:"workers" yaml:"workers" validate:"gte=0,lte=256"`
	DatasetsDir string `mapstructure:"datasets_dir" yaml:"datasets_dir"`
}

var validate = validator.New()

// Defaults returns the configuration used when nothing is set. DatasetsDir
// is resolved by Load.
func Defaults() *Global {
	return &Global{
		Delimiter:    ";",
		OutputFormat: "text",
		Color:        true,
		LogLevel:     "warn",
		LogFormat:    "console",
	}
}

// Validate checks field constraints.
func (c *Global) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.Newf("invalid config value for %s: %q violates %s=%s",
				fe.Field(), fe.Value(), fe.Tag(), fe.Param())
		}
		return errors.Wrap(err, "validate config")
	}
	return nil
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Global) DelimiterRune() rune {
	if c.Delimiter == "" {
		return ';'
	}
	return []rune(c.Delimiter)[0]
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home dir")
	}
	return filepath.Join(home, dirName), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.statloom/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	path := cfgFile
	if path == "" {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "mkdir config dir")
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal yaml")
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. A .env file in the working
// directory is read into the environment first without overriding it.
func Load(cfgFile string) (*Global, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("data_file", d.DataFile)
	v.SetDefault("delimiter", d.Delimiter)
	v.SetDefault("sheet", d.Sheet)
	v.SetDefault("output_format", d.OutputFormat)
	v.SetDefault("color", d.Color)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("datasets_dir", d.DatasetsDir)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfgFile)
		}
	} else {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return nil, errors.Wrap(err, "read config")
			}
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	c.OutputFormat = strings.ToLower(c.OutputFormat)
	c.LogLevel = strings.ToLower(c.LogLevel)
	if c.DatasetsDir == "" {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		c.DatasetsDir = filepath.Join(dir, "datasets")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Keys lists the settable keys in display order.
var Keys = []string{
	"data_file", "delimiter", "sheet", "output_format", "color",
	"log_level", "log_format", "workers", "datasets_dir",
}

// Set assigns one key from its string form and validates the result.
func (c *Global) Set(key, val string) error {
	next := *c
	switch key {
	case "data_file":
		next.DataFile = val
	case "delimiter":
		next.Delimiter = val
	case "sheet":
		next.Sheet = val
	case "output_format":
		next.OutputFormat = strings.ToLower(val)
	case "color":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return errors.Newf("invalid bool for color: %s", val)
		}
		next.Color = b
	case "log_level":
		next.LogLevel = strings.ToLower(val)
	case "log_format":
		next.LogFormat = strings.ToLower(val)
	case "workers":
		i, err := strconv.Atoi(val)
		if err != nil {
			return errors.Newf("invalid int for workers: %s", val)
		}
		next.Workers = i
	case "datasets_dir":
		next.DatasetsDir = val
	default:
		return errors.Newf("unknown key: %s", key)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Get returns the string form of one key.
func (c *Global) Get(key string) (string, error) {
	switch key {
	case "data_file":
		return c.DataFile, nil
	case "delimiter":
		return c.Delimiter, nil
	case "sheet":
		return c.Sheet, nil
	case "output_format":
		return c.OutputFormat, nil
	case "color":
		return strconv.FormatBool(c.Color), nil
	case "log_level":
		return c.LogLevel, nil
	case "log_format":
		return c.LogFormat, nil
	case "workers":
		return strconv.Itoa(c.Workers), nil
	case "datasets_dir":
		return c.DatasetsDir, nil
	default:
		return "", errors.Newf("unknown key: %s", key)
	}
}
