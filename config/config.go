package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "SHOPCART_CONFIG_FILE"

type Product struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Price       int    `mapstructure:"price"`
}

type Config struct {
	LogLevel   slog.Level `mapstructure:"log_level"`
	ReceiptLog string     `mapstructure:"receipt_log"`
	Catalog    []Product  `mapstructure:"catalog"`
}

var defaultCatalog = []map[string]any{
	{
		"title":       "HTML húfa",
		"description": "Húfa sem heldur hausnum heitum og hvíslar hugsanlega að þér hvaða element væri best að nota.",
		"price":       5_000,
	},
	{
		"title":       "CSS sokkar",
		"description": "Sokkar sem skalast vel með hvaða fótum sem er.",
		"price":       3_000,
	},
	{
		"title":       "JavaScript jakki",
		"description": "Mjög töff jakki fyrir öll sem skrifa JavaScript reglulega.",
		"price":       20_000,
	},
}

// Load reads the config file named by the --config flag or the
// SHOPCART_CONFIG_FILE env. Without a file the defaults are used.
func Load() Config {
	cfg, err := load(getConfigFilepath(os.Args))
	if err != nil {
		die(err)
	}
	return cfg
}

func load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("log_level", "warn")
	v.SetDefault("receipt_log", "")
	v.SetDefault("catalog", defaultCatalog)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	for i, p := range c.Catalog {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("catalog[%d]: title: required", i))
		}
	}
	return errors.Join(errs...)
}

func getConfigFilepath(args []string) string {
	cmdLine := pflag.NewFlagSet(args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
	os.Exit(2)
}

func (c Config) Print(w io.Writer) {
	tamplate := `
	General:
	LogLevel=%q
	ReceiptLog=%q

	Catalog:
%s
`
	var catalog strings.Builder
	for _, p := range c.Catalog {
		fmt.Fprintf(&catalog, "\t\t%q price=%d\n", p.Title, p.Price)
	}

	fmt.Fprintln(w, "Loaded config:")
	fmt.Fprintf(w,
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.ReceiptLog,
		strings.TrimRight(catalog.String(), "\n"),
	)
}
