package cli

import (
	"strings"

	"github.com/andaru/pear/rest"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables overriding flag defaults,
// e.g. PEARDECODE_FORMAT=yaml.
const EnvPrefix = "PEARDECODE"

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the decode command configuration.
type Config struct {
	Format  string `mapstructure:"format"`
	Kind    string `mapstructure:"kind"`
	Verbose bool   `mapstructure:"verbose"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", FormatJSON)
	v.SetDefault("kind", "auto")
	v.SetDefault("verbose", false)
}

// LoadConfig builds the configuration from flags, falling back to
// environment variables and then defaults.
func LoadConfig(flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, errors.Wrap(err, "bind flags")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return errors.Errorf("unsupported output format %q", c.Format)
	}
	_, err := rest.ParseKind(c.Kind)
	return err
}

// DocumentKind returns the configured document kind, rest.KindUnknown
// meaning detect it.
func (c Config) DocumentKind() rest.Kind {
	k, _ := rest.ParseKind(c.Kind)
	return k
}
