// Package config loads the configuration of the benchmark runner.
package config

import (
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sectrean/di-bench/internal/errors"
)

// EnvPrefix is the prefix of the environment variables that override the configuration file.
const EnvPrefix = "IOCPERF_"

// Config is the configuration of a benchmark run.
type Config struct {
	// Adapters to run. All adapters are run when empty.
	Adapters []string `yaml:"adapters"`
	// Scenarios to run. All scenarios are run when empty.
	Scenarios []string `yaml:"scenarios"`

	// Iterations is the number of resolves per scenario and run.
	Iterations int `yaml:"iterations" validate:"gt=0"`
	// Workers is the number of goroutines used by contended runs.
	Workers int `yaml:"workers" validate:"gt=0"`
	// Timeout bounds a whole benchmark run. Zero disables the timeout.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	// Level is a zap level name such as "debug" or "info".
	Level string `yaml:"level" validate:"oneof=debug info warn error dpanic panic fatal"`
	// Development enables the zap development encoder.
	Development bool `yaml:"development"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Iterations: 1000,
		Workers:    4,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path, if it is not empty, then applies
// the IOCPERF_* environment variables. Variables in the env files are loaded first,
// without overriding variables that are already set.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "load config")
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "load config %s", path)
		}
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	return cfg, nil
}

// loadEnvFiles loads each env file that exists. A missing file is skipped.
func loadEnvFiles(files []string) error {
	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "env file %s", file)
		}
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookupEnv("ADAPTERS"); ok {
		c.Adapters = splitList(v)
	}
	if v, ok := lookupEnv("SCENARIOS"); ok {
		c.Scenarios = splitList(v)
	}
	if v, ok := lookupEnv("LOG_LEVEL"); ok {
		c.Log.Level = v
	}

	var errs errors.MultiError
	if v, ok := lookupEnv("ITERATIONS"); ok {
		n, err := strconv.Atoi(v)
		errs = errs.Append(errors.Wrapf(err, "%sITERATIONS", EnvPrefix))
		c.Iterations = n
	}
	if v, ok := lookupEnv("WORKERS"); ok {
		n, err := strconv.Atoi(v)
		errs = errs.Append(errors.Wrapf(err, "%sWORKERS", EnvPrefix))
		c.Workers = n
	}
	if v, ok := lookupEnv("TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		errs = errs.Append(errors.Wrapf(err, "%sTIMEOUT", EnvPrefix))
		c.Timeout = d
	}
	if v, ok := lookupEnv("LOG_DEVELOPMENT"); ok {
		b, err := strconv.ParseBool(v)
		errs = errs.Append(errors.Wrapf(err, "%sLOG_DEVELOPMENT", EnvPrefix))
		c.Log.Development = b
	}

	return errs.Join()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their YAML names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	return v
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	err := validate.Struct(c)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var errs errors.MultiError
	for _, fe := range fieldErrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}

		errs = errs.Append(errors.Errorf("%s: must satisfy %s (got %v)", field, rule, fe.Value()))
	}
	return errs.Join()
}

func lookupEnv(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
