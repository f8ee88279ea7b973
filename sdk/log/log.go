package plotlog

import (
	"context"
	"io"
	"log/syslog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rockbears/log"
	"github.com/sirupsen/logrus"
	lSyslog "github.com/sirupsen/logrus/hooks/syslog"
)

// Conf contains log configuration
type Conf struct {
	Level          string    `toml:"level" mapstructure:"level" default:"warning" json:"level" comment:"debug, info, warning or error"`
	Format         string    `toml:"format" mapstructure:"format" default:"text" json:"format" comment:"text, json or discard"`
	SyslogHost     string    `toml:"syslog_host" mapstructure:"syslog_host" json:"syslog_host"`
	SyslogPort     string    `toml:"syslog_port" mapstructure:"syslog_port" json:"syslog_port"`
	SyslogProtocol string    `toml:"syslog_protocol" mapstructure:"syslog_protocol" default:"udp" json:"syslog_protocol"`
	SyslogExtraTag string    `toml:"syslog_tag" mapstructure:"syslog_tag" default:"asciiplot" json:"syslog_tag"`
	NoColor        bool      `toml:"-" mapstructure:"-" json:"-"`
	Output         io.Writer `toml:"-" mapstructure:"-" json:"-"`
}

// Initialize init log level, format and output. Logs default to stderr
// so that the plot written on stdout stays readable.
func Initialize(ctx context.Context, conf *Conf) {
	switch conf.Level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	case "warning", "warn", "":
		logrus.SetLevel(logrus.WarnLevel)
	default:
		logrus.SetLevel(logrus.WarnLevel)
	}

	out := conf.Output
	if out == nil {
		out = os.Stderr
	}
	logrus.SetOutput(out)

	switch conf.Format {
	case "discard":
		logrus.SetOutput(io.Discard)
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&Formatter{DisabledColors: conf.NoColor || !isTerminal(out)})
	}

	if conf.SyslogHost != "" && conf.SyslogPort != "" {
		if err := initSyslogHook(conf); err != nil {
			log.Error(ctx, "unable to initialize syslog hook on %s: %v", conf.SyslogHost+":"+conf.SyslogPort, err)
		} else {
			log.Debug(ctx, "syslog hook initialized")
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func initSyslogHook(conf *Conf) error {
	hook, err := lSyslog.NewSyslogHook(conf.SyslogProtocol, conf.SyslogHost+":"+conf.SyslogPort, syslog.LOG_INFO, conf.SyslogExtraTag)
	if err != nil {
		return errors.Wrap(err, "unable to init syslog hook")
	}
	logrus.AddHook(hook)
	return nil
}
