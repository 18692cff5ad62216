package log

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/aalborgunilib/check-process-memory-usage/src/configs"
)

// New configures the global logrus logger for one check run. All
// diagnostic output goes to stderr; stdout belongs to the plugin
// protocol and must carry nothing but the listing and the status line.
func New(cfg *configs.Config) *logrus.Logger {
	logLevel := logrus.WarnLevel
	if cfg != nil && cfg.Verbose {
		logLevel = logrus.DebugLevel
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logrus.SetLevel(logLevel)

	return logrus.StandardLogger()
}
