package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/hyperlayers/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("hyperlayers", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
hyperlayers - compile Hyper key layer descriptions into a Karabiner-Elements configuration.

Usage:
  hyperlayers [options] [LAYERS_PATH]

Arguments:
  LAYERS_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	layersFlag := flagSet.String("layers", "", "Path to the layers file or directory.")
	lFlag := flagSet.String("l", "", "Path to the layers file or directory (shorthand).")
	outputFlag := flagSet.String("output", "", "Where to write karabiner.json. (default \""+app.DefaultOutputPath+"\")")
	oFlag := flagSet.String("o", "", "Where to write karabiner.json (shorthand).")
	profileFlag := flagSet.String("profile", "", "Name of the generated Karabiner profile. (default \"Default\")")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print the generated document to stdout instead of writing it.")
	mergeFlag := flagSet.Bool("merge", false, "Replace only the rules of the profile inside an existing output file, keeping everything else.")
	watchFlag := flagSet.Bool("watch", false, "Keep running and recompile whenever the layer files change.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := firstNonEmpty(*layersFlag, *lFlag)
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}
	slog.Debug("Layers path determined.", "path", path)

	if path == "" {
		slog.Debug("No layers path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		LayersPath:  path,
		OutputPath:  firstNonEmpty(*outputFlag, *oFlag),
		ProfileName: *profileFlag,
		DryRun:      *dryRunFlag,
		Merge:       *mergeFlag,
		Watch:       *watchFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
