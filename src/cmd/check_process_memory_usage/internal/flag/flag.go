package flag

import (
	"fmt"

	"github.com/alecthomas/kingpin"

	"github.com/aalborgunilib/check-process-memory-usage/src/configs"
	"github.com/aalborgunilib/check-process-memory-usage/src/consts"
)

const unsetThreshold = -1

var (
	app = kingpin.New(consts.AppName,
		"Monitoring plugin that sums resident and virtual memory over a filtered set of processes.")

	Conf = app.Flag("conf", "Read defaults from a YAML config file (other flags are ignored).").String()

	critical = app.Flag("critical", "Critical threshold on resident set size, in KB.").
			Short('c').Default("-1").Int64()
	warning = app.Flag("warning", "Warning threshold on resident set size, in KB.").
		Short('w').Default("-1").Int64()
	noMatch = app.Flag("no_filter_match", "Report OK instead of UNKNOWN when no process matches.").
		Short('n').Bool()
	fname = app.Flag("fname", "Exact executable name to match.").
		Short('f').String()
	cmndline = app.Flag("cmndline", "Substring of the command line to match.").
			Short('C').String()
	uid = app.Flag("uid", "Owning user, numeric uid or name.").
		Short('u').String()
	gid = app.Flag("gid", "Owning group, numeric gid or name.").
		Short('g').String()
	pid = app.Flag("pid", "Exact pid to match.").
		Short('p').Int()
	pidFile = app.Flag("pidfile", "Read the pid to match from the first line of this file.").
		Short('P').String()
	timeout = app.Flag("timeout", "Deadline for the whole check, in seconds.").
		Short('t').Default(fmt.Sprint(configs.DefaultTimeoutSeconds)).Int()
	verbose = app.Flag("verbose", "Print the considered process table with matches highlighted.").
		Short('v').Bool()
)

func init() {
	app.Version(consts.AppVersion)
	app.HelpFlag.Short('h')
}

// Parse parses the command line. Errors are returned rather than
// handled by kingpin so the caller can exit through the plugin
// protocol (UNKNOWN, exit 3) instead of kingpin's usage dump.
func Parse(args []string) error {
	_, err := app.Parse(args)
	return err
}

// GenConfigFromFlags builds the run configuration from the parsed
// flags.
func GenConfigFromFlags() *configs.Config {
	config := configs.NewConfig()
	if *warning != unsetThreshold {
		w := *warning
		config.WarningKB = &w
	}
	if *critical != unsetThreshold {
		c := *critical
		config.CriticalKB = &c
	}
	config.NoMatchOK = *noMatch
	config.FName = *fname
	config.CmdLine = *cmndline
	config.UID = *uid
	config.GID = *gid
	config.PID = *pid
	config.PidFile = *pidFile
	config.TimeoutSeconds = *timeout
	config.Verbose = *verbose
	return config
}
