package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aalborgunilib/check-process-memory-usage/src/check"
	"github.com/aalborgunilib/check-process-memory-usage/src/cmd/check_process_memory_usage/internal/flag"
	"github.com/aalborgunilib/check-process-memory-usage/src/configs"
	"github.com/aalborgunilib/check-process-memory-usage/src/consts"
	"github.com/aalborgunilib/check-process-memory-usage/src/filter"
	"github.com/aalborgunilib/check-process-memory-usage/src/log"
	"github.com/aalborgunilib/check-process-memory-usage/src/pkg/plugin"
	"github.com/aalborgunilib/check-process-memory-usage/src/pkg/render"
	"github.com/aalborgunilib/check-process-memory-usage/src/pkg/snapshot"
	"github.com/aalborgunilib/check-process-memory-usage/src/types"
)

func getConfig() (*configs.Config, error) {
	var config *configs.Config
	if *flag.Conf != "" {
		c, err := configs.NewConfigWithFile(*flag.Conf)
		if err != nil {
			return nil, err
		}
		config = c
	} else {
		config = flag.GenConfigFromFlags()
	}
	return config, config.Verify()
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := flag.Parse(os.Args[1:]); err != nil {
		return unknown(err.Error())
	}

	config, err := getConfig()
	if err != nil {
		return unknown(err.Error())
	}

	logger := log.New(config)
	if config.File != "" {
		logger.Debugf("config path: %s, other flags have been ignored", config.File)
	}
	logger.Debugf("%s version %s", consts.AppName, consts.AppVersion)

	// The check's own command line contains the --cmndline argument
	// text, so the check itself is excluded from the candidate set
	// whenever that filter is active.
	exclude := map[int32]struct{}{}
	if config.CmdLine != "" {
		exclude[int32(os.Getpid())] = struct{}{}
	}

	runner := check.NewRunner(config, snapshot.NewSystemSource(), filter.SystemResolver{}, exclude)
	result := runner.Run(context.Background())

	if config.Verbose && len(result.Records) > 0 {
		if err := render.Listing(os.Stdout, result.Records, result.Matches); err != nil {
			logger.Warnf("failed to print process listing: %v", err)
		}
	}

	fmt.Println(plugin.Render(result))
	return result.Status.ExitCode()
}

// unknown reports a pre-run failure (unparsable arguments, bad
// configuration) through the plugin protocol: one UNKNOWN line, no
// perfdata, exit 3.
func unknown(message string) int {
	fmt.Println(plugin.Render(check.Result{
		Status: types.StatusUnknown,
		Reason: message,
	}))
	return types.StatusUnknown.ExitCode()
}
