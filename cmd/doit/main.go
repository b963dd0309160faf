// Command doit drives a personal development container through a container
// engine's command line.
//
//	doit new mybox       create, start and provision mybox
//	doit work mybox      start mybox and attach this terminal to it
//	doit list            list every container the engine knows about
//	doit destroy mybox   stop and remove mybox, after confirmation
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/banksean/doit"
	kongcompletion "github.com/jotaen/kong-completion"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Context struct {
	Context context.Context
	Engine  string
	LogFile string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer

	messenger doit.UserMessenger
}

// workflow returns a Workflow that drives the engine with this invocation's stdio.
func (c *Context) workflow(confirmer doit.Confirmer) *doit.Workflow {
	ops := doit.NewDockerContainerOps(c.Engine, c.Stdin, c.Stdout, c.Stderr)
	return doit.NewWorkflow(ops, c.messenger, confirmer)
}

type CLI struct {
	Engine   string `default:"docker" placeholder:"<engine-binary>" help:"container engine command line to drive (docker, podman, or a path to either)"`
	LogFile  string `default:"${logfile}" placeholder:"<log-file-path>" help:"location of log file"`
	LogLevel string `default:"info" enum:"debug,info,warn,error" placeholder:"<debug|info|warn|error>" help:"the logging level (debug, info, warn, error)"`

	New        NewCmd                    `cmd:"" help:"create a new container, start it and install the base packages"`
	Work       WorkCmd                   `cmd:"" help:"start a container and attach this terminal to it"`
	List       ListCmd                   `cmd:"" aliases:"ls" help:"list all containers, including stopped ones"`
	Destroy    DestroyCmd                `cmd:"" help:"stop and remove a container, after confirmation"`
	Doctor     DoctorCmd                 `cmd:"" help:"check that the container engine is installed and answering"`
	Logs       LogsCmd                   `cmd:"" help:"print this command's log file in a readable form"`
	Doc        DocCmd                    `cmd:"" help:"print complete command help formatted as markdown"`
	Version    VersionCmd                `cmd:"" help:"print version information about this command"`
	Completion kongcompletion.Completion `cmd:"" help:"print shell code that enables tab completion"`
}

// initSlog points the default logger at a size-rotated JSON log file and
// returns the file so the caller can close it.
func (c *CLI) initSlog() io.Closer {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logFile := &lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	slog.Info("slog initialized", "engine", c.Engine)
	return logFile
}

func defaultLogFile() string {
	return filepath.Join(os.TempDir(), "doit", "doit.log")
}

const description = `Create, work in, list and destroy a personal development container.

Every operation is a fixed sequence of container engine commands. The first
one that fails stops the sequence and doit exits with status 2. Declining
the destroy confirmation also exits with status 2.`

// exitCode is the panic value used to unwind out of kong.Exit.
type exitCode int

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("doit"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"logfile": defaultLogFile()},
		kong.Exit(func(c int) { panic(exitCode(c)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "doit: %v\n", err)
		return doit.ExitInternal
	}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	kongcompletion.Register(parser,
		kongcompletion.WithPredictor("container", containerPredictor()),
	)

	kctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	closer := cli.initSlog()
	defer closer.Close()

	messenger := doit.NewTerminalMessenger(stdout, stderr)
	err = kctx.Run(&Context{
		Context:   ctx,
		Engine:    cli.Engine,
		LogFile:   cli.LogFile,
		Stdin:     stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		messenger: messenger,
	})
	if err != nil {
		reportError(ctx, messenger, err)
	}
	return doit.ExitCode(err)
}

// reportError prints the user-facing form of err.
func reportError(ctx context.Context, messenger doit.UserMessenger, err error) {
	slog.ErrorContext(ctx, "run", "error", err, "exitCode", doit.ExitCode(err))
	if errors.Is(err, doit.ErrDeclined) {
		messenger.Message(ctx, "Aborted, nothing was destroyed.")
		return
	}
	var stepErr *doit.StepError
	if errors.As(err, &stepErr) {
		messenger.Failure(ctx, stepErr.Diagnostic())
		return
	}
	messenger.Failure(ctx, fmt.Sprintf("doit: %v", err))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
