package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	defaults "github.com/mcuadros/go-defaults"
	toml "github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/rockbears/log"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/asciiplot/asciiplot/cli"
	"github.com/asciiplot/asciiplot/sdk"
	"github.com/asciiplot/asciiplot/sdk/equation"
	plotlog "github.com/asciiplot/asciiplot/sdk/log"
	"github.com/asciiplot/asciiplot/sdk/plotter"
)

const (
	configFileName = ".asciiplot.toml"
	envPrefix      = "asciiplot"
)

// appFs is the filesystem configuration files are read from.
var appFs = afero.NewOsFs()

// Configuration is the asciiplot configuration structure.
type Configuration struct {
	Size        int               `toml:"size" mapstructure:"size" default:"43" json:"size" comment:"Rows and columns of the grid. An even size is bumped to the next odd one"`
	Equation    string            `toml:"equation" mapstructure:"equation" default:"trig" json:"equation" comment:"line, trig, quad, cube or exp"`
	ClearScreen bool              `toml:"clear_screen" mapstructure:"clear_screen" default:"true" json:"clear_screen" comment:"Clear the terminal before each redraw"`
	HistoryFile string            `toml:"history_file" mapstructure:"history_file" json:"history_file" comment:"Keep the interactive commands history in this file"`
	Theme       plotter.ThemeConf `toml:"theme" mapstructure:"theme" json:"theme"`
	Log         plotlog.Conf      `toml:"log" mapstructure:"log" json:"log"`
}

func defaultConfig() Configuration {
	var conf Configuration
	defaults.SetDefaults(&conf)
	return conf
}

// Validate checks the configuration values.
func (c Configuration) Validate() error {
	if c.Size <= 0 {
		return cli.NewError("invalid size %d: must be greater than 0", c.Size)
	}
	if _, err := equation.Get(c.Equation); err != nil {
		return cli.WrapError(err, "invalid configuration")
	}
	switch c.Log.Level {
	case "debug", "info", "warning", "warn", "error":
	default:
		return cli.NewError("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json", "discard":
	default:
		return cli.NewError("invalid log format %q", c.Log.Format)
	}
	return nil
}

// newViper returns a viper instance knowing every configuration key with
// its default value, overridable by ASCIIPLOT_* environment variables.
func newViper(conf Configuration) (*viper.Viper, error) {
	btes, err := toml.Marshal(conf)
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal configuration")
	}

	base := viper.New()
	base.SetConfigType("toml")
	if err := base.ReadConfig(bytes.NewReader(btes)); err != nil {
		return nil, errors.Wrap(err, "unable to read default configuration")
	}

	vp := viper.New()
	vp.SetFs(appFs)
	for _, k := range base.AllKeys() {
		vp.SetDefault(k, base.Get(k))
	}
	vp.SetEnvPrefix(envPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()
	return vp, nil
}

// configFilePath returns the configuration file to load: the given one, else
// the first existing among ./.asciiplot.toml and ~/.asciiplot.toml.
func configFilePath(file string) (string, error) {
	if file != "" {
		if _, err := appFs.Stat(file); os.IsNotExist(err) {
			return "", cli.NewError("file %s doesn't exist", file)
		}
		return file, nil
	}

	var candidates []string
	if dir, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(dir, configFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, configFileName))
	}
	for _, c := range candidates {
		if _, err := appFs.Stat(c); err == nil {
			return c, nil
		}
	}
	return "", nil
}

// loadConfig merges defaults, the configuration file, the environment and
// the command line flags, in this order.
func loadConfig(v cli.Values) (string, *Configuration, error) {
	file, err := configFilePath(v.GetString("file"))
	if err != nil {
		return "", nil, err
	}

	conf := defaultConfig()
	vp, err := newViper(conf)
	if err != nil {
		return "", nil, err
	}

	if file != "" {
		vp.SetConfigFile(file)
		if err := vp.ReadInConfig(); err != nil {
			return "", nil, cli.WrapError(err, "unable to read %s", file)
		}
	}

	if err := vp.Unmarshal(&conf); err != nil {
		return "", nil, cli.WrapError(err, "unable to parse configuration")
	}

	if v.GetString("size") != "" {
		size, err := v.GetInt("size")
		if err != nil {
			return "", nil, err
		}
		conf.Size = size
	}
	if e := v.GetString("equation"); e != "" {
		conf.Equation = e
	}
	if v.GetBool("no-color") {
		conf.Theme.NoColor = true
	}
	conf.Log.NoColor = conf.Theme.NoColor
	if v.GetBool("verbose") {
		conf.Log.Level = "debug"
	}

	if err := conf.Validate(); err != nil {
		return "", nil, err
	}
	return file, &conf, nil
}

// setup loads the configuration and initializes the logger.
func setup(v cli.Values) (context.Context, *Configuration, error) {
	file, conf, err := loadConfig(v)
	if err != nil {
		return nil, nil, err
	}

	ctx := context.Background()
	plotlog.Initialize(ctx, &conf.Log)
	log.Debug(ctx, "%s", sdk.VersionString())
	if file != "" {
		log.Debug(ctx, "configuration loaded from %s", file)
	}
	ctx = context.WithValue(ctx, plotlog.Equation, conf.Equation)
	ctx = context.WithValue(ctx, plotlog.Size, conf.Size)
	return ctx, conf, nil
}

// configPrintToEnv prints the configuration as environment variables.
func configPrintToEnv(conf Configuration, w io.Writer) error {
	vp, err := newViper(conf)
	if err != nil {
		return err
	}
	keys := vp.AllKeys()
	sort.Strings(keys)
	for _, k := range keys {
		env := strings.ToUpper(envPrefix + "_" + strings.ReplaceAll(k, ".", "_"))
		value := fmt.Sprintf("%v", vp.Get(k))
		fmt.Fprintf(w, "export %s=\"%s\"\n", env, strings.ReplaceAll(value, "\n", "\\n"))
	}
	return nil
}
