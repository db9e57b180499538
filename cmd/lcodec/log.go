package main

import (
	"fmt"
	"os"

	logconfig "github.com/ledgerkit/binarycodec/internal/config/log"
	tlog "github.com/ledgerkit/binarycodec/internal/telemetry/log"
)

// initLogging installs a telemetry logger built from LCODEC_LOG_CONFIG, a YAML file
// path, when set. Absent that, the process runs with the console-only default.
func initLogging() {
	path := os.Getenv("LCODEC_LOG_CONFIG")
	if path == "" {
		return
	}
	opts, err := logconfig.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load log config %s: %v\n", path, err)
		os.Exit(1)
	}
	tlog.SetDefault(tlog.New(opts))
	tlog.Debugf("logging configured from %s", path)
}
