// Package cli wires argument parsing, configuration loading, validation and
// logger setup into the agent's root command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dreibh/atlasmns-trace-TESTONLY/internal/config"
	"github.com/dreibh/atlasmns-trace-TESTONLY/internal/engine"
	"github.com/dreibh/atlasmns-trace-TESTONLY/internal/logging"
)

const ProgramName = "atlasmns-trace-agent"

// Exit codes. Help is not a success path.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

type runner struct {
	stderr   io.Writer
	engine   engine.Engine
	exitCode int
}

// Run executes the agent startup for args (without the program name) and
// returns the process exit code.
func Run(args []string, stderr io.Writer, eng engine.Engine) int {
	if args == nil {
		args = []string{}
	}
	r := &runner{stderr: stderr, engine: eng, exitCode: ExitSuccess}

	cmd := r.rootCommand()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		r.reportError(err)
		return ExitFailure
	}
	return r.exitCode
}

// rootCommand passes argv through unparsed to config.ParseCommandLine.
func (r *runner) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                ProgramName + " [config-file]",
		Short:              "HiPerConTracer measurement agent for the Atlas MNS scheduler",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE:               r.run,
	}
	cmd.SetOut(r.stderr)
	cmd.SetErr(r.stderr)

	cmd.SetHelpFunc(func(_ *cobra.Command, _ []string) {
		fmt.Fprint(r.stderr, config.DefaultSchema.Usage(ProgramName))
		r.exitCode = ExitFailure
	})
	return cmd
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	cl, err := config.ParseCommandLine(args)
	if err != nil {
		return err
	}
	if cl.HelpRequested {
		return cmd.Help()
	}

	var file *config.FileLayer
	if cl.HasConfigFile {
		fl, err := config.LoadFile(cl.ConfigFile)
		if err != nil {
			return err
		}
		file = &fl
	}

	resolved, err := config.Resolve(cl, file)
	if err != nil {
		return err
	}

	log := logging.New(resolved.Options.LogLevel, r.stderr)
	defer func() { _ = log.Sync() }()

	logResolved(log, resolved, file)
	return r.engine.Start(cmd.Context(), resolved.Options, log)
}

func logResolved(log *zap.Logger, resolved config.Resolved, file *config.FileLayer) {
	startup := log.Sugar().Named("startup")
	if file != nil {
		for _, key := range file.Ignored {
			startup.Warnw("unknown parameter is ignored", "file", file.Path, "parameter", key)
		}
	}

	provenance := make(map[string]string, len(resolved.Provenance))
	for key, src := range resolved.Provenance {
		provenance[key] = src.String()
	}
	startup.Debugw("configuration sources", "sources", provenance)
	startup.Infow("configuration resolved", "config", resolved.Options.DebugMap())
}

func (r *runner) reportError(err error) {
	c := color.New(color.FgRed)
	if colorTerminal(r.stderr) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprintf(r.stderr, "ERROR: %v\n", err)
}

// colorTerminal reports whether w itself is a terminal and NO_COLOR is unset.
func colorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
