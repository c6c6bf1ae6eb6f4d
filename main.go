package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/font-picker/internal/app"
	"github.com/atomicstack/font-picker/internal/config"
	"github.com/atomicstack/font-picker/internal/logging"
	"github.com/atomicstack/font-picker/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": flags,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	if source, width, height, ok := detectTTY(); ok {
		payload["tty"] = map[string]interface{}{
			"source": source,
			"width":  width,
			"height": height,
		}
	}
	return payload
}

// detectTTY probes the standard descriptors for the first usable terminal.
func detectTTY() (string, int, int, bool) {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	for _, probe := range probes {
		fd := int(probe.fd)
		if fd < 0 || !term.IsTerminal(fd) {
			continue
		}
		if width, height, err := term.GetSize(fd); err == nil {
			return probe.name, width, height, true
		}
	}
	return "", 0, 0, false
}
