package main

import (
	"fmt"
	"io"
	"os"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/tacc/errors"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
	"golang.org/x/term"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tacc", "main")

const (
	exitUsage    = 1
	exitNoInput  = 2
	exitCompiler = 3
)

// printError prints err with its stack trace, showing source lines in color
// when w is a terminal.
func printError(w io.Writer, err error) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(w, tracerr.SprintSourceColor(err))
		return
	}
	fmt.Fprintln(w, tracerr.Sprint(err))
}

func setupLogging(w io.Writer, verbose bool) {
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(w, verbose))
	if verbose {
		capnslog.SetGlobalLogLevel(capnslog.DEBUG)
	} else {
		capnslog.SetGlobalLogLevel(capnslog.WARNING)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "tacc",
		Usage:     "compile a program to three-address code",
		ArgsUsage: "<input-file>",
		Writer:    stdout,
		ErrWriter: stderr,
		ExitErrHandler: func(c *cli.Context, err error) {
			exit, ok := err.(cli.ExitCoder)
			if !ok {
				return
			}
			if msg := exit.Error(); msg != "" {
				fmt.Fprintln(c.App.ErrWriter, msg)
			}
			cli.OsExiter(exit.ExitCode())
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "read settings from `FILE` instead of " + defaultConfig,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write code to `FILE` instead of standard output",
			},
			&cli.StringFlag{
				Name:  "emit",
				Usage: "what to write: " + emitTAC + " or " + emitLLVM,
			},
			&cli.BoolFlag{
				Name:  "dump-ast",
				Usage: "print the syntax tree before generating code",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log what the compiler is doing",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: tacc [flags] <input-file>", exitUsage)
	}

	s, err := loadSettings(c.String("config"))
	if err != nil {
		printError(c.App.ErrWriter, err)
		return cli.Exit("", exitUsage)
	}
	if c.IsSet("output") {
		s.Output = c.String("output")
	}
	if c.IsSet("emit") {
		s.Emit = c.String("emit")
	}
	if c.IsSet("dump-ast") {
		s.DumpAST = c.Bool("dump-ast")
	}
	if c.IsSet("verbose") {
		s.Verbose = c.Bool("verbose")
	}
	if err := s.validate(); err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}

	setupLogging(c.App.ErrWriter, s.Verbose)

	filename := c.Args().First()
	in, err := os.Open(filename)
	if err != nil {
		printError(c.App.ErrWriter, tracerr.Wrap(err))
		return cli.Exit("", exitNoInput)
	}
	defer in.Close()

	out := c.App.Writer
	if s.Output != "" && s.Output != "-" {
		f, err := os.Create(s.Output)
		if err != nil {
			printError(c.App.ErrWriter, tracerr.Wrap(err))
			return cli.Exit("", exitNoInput)
		}
		defer f.Close()
		out = f
	}

	plog.Debugf("compiling %s with %+v", filename, s)

	ok, err := compile(in, filename, out, c.App.ErrWriter, s)
	if err != nil {
		if fatal, isFatal := err.(errors.Fatal); isFatal {
			fmt.Fprintln(c.App.ErrWriter, fatal)
		} else {
			printError(c.App.ErrWriter, err)
		}
		return cli.Exit("compilation failed", exitCompiler)
	}
	if !ok {
		return cli.Exit("compilation failed", exitCompiler)
	}
	return nil
}

func main() {
	err := newApp(os.Stdout, os.Stderr).Run(os.Args)
	if err != nil {
		if _, ok := err.(cli.ExitCoder); !ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUsage)
		}
	}
}
