// Package pidfile resolves the target pid for the pid filter, either
// from an explicit value or from the first line of a pidfile.
package pidfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Resolve determines the effective target pid.
//
// An explicit pid always wins and the pidfile is not touched. With a
// pidfile, a missing or unreadable file is an error, but a first line
// that does not parse as a number is not: the resolver just yields no
// target pid and downstream filtering proceeds unfiltered by pid.
func Resolve(explicit int32, path string) (pid int32, ok bool, err error) {
	if explicit > 0 {
		return explicit, true, nil
	}
	if path == "" {
		return 0, false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, fmt.Errorf("pidfile %s does not exist", path)
		}
		return 0, false, fmt.Errorf("failed to open pidfile %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, false, fmt.Errorf("failed to read pidfile %s: %w", path, err)
		}
		return 0, false, nil
	}

	line := strings.TrimSpace(scanner.Text())
	value, perr := strconv.ParseInt(line, 10, 32)
	if perr != nil || value <= 0 {
		// Lenient: an empty or malformed first line drops the pid
		// filter instead of failing the whole check.
		return 0, false, nil
	}
	return int32(value), true, nil
}
