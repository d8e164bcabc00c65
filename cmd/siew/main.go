// Command siew runs Siew programs: with a path it interprets the file, with
// no arguments it reads expressions from an interactive prompt.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	siew "github.com/ArcE404/siewlang"
	"github.com/ArcE404/siewlang/internal/logio"
)

// sysexits.h-style process exit codes.
const (
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70
	exitIO      = 74
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		trace bool
		dump  bool
	)

	log := &logio.Logger{}
	log.SetOutput(os.Stderr)

	code := 0
	cmd := &cobra.Command{
		Use:           "siew [path]",
		Short:         "the Siew interpreter",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []siew.VMOption
			if trace {
				opts = append(opts, siew.WithLogf(log.Leveledf("TRACE")))
			}
			vm := siew.New(opts...)
			defer vm.Close()

			switch len(args) {
			case 0:
				code = repl(vm, dump, log)
			case 1:
				code = runFile(vm, args[0], dump, log)
			default:
				fmt.Fprintln(os.Stderr, "Usage: siew [path]")
				code = exitUsage
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "log each instruction as it executes")
	cmd.Flags().BoolVar(&dump, "dump", false, "disassemble each compiled chunk before running it")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	return code
}

func runFile(vm *siew.VM, path string, dump bool, log *logio.Logger) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file %q.\n", path)
		return exitIO
	}

	switch interpret(vm, string(source), dump, log) {
	case siew.InterpretCompileError:
		return exitCompile
	case siew.InterpretRuntimeError:
		return exitRuntime
	}
	return 0
}

func repl(vm *siew.VM, dump bool, log *logio.Logger) int {
	rl, err := readline.New("siew> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitIO
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return 0
		case err != nil:
			fmt.Fprintln(os.Stderr, err)
			return exitIO
		}

		// Each line is a complete program; errors do not end the session.
		interpret(vm, line, dump, log)
	}
}

func interpret(vm *siew.VM, source string, dump bool, log *logio.Logger) siew.InterpretResult {
	if !dump {
		return vm.Interpret(source)
	}

	chunk, err := vm.Compile(source)
	if err != nil {
		return siew.InterpretCompileError
	}
	defer chunk.Free()

	lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
	siew.DisassembleChunk(lw, chunk, "code")
	lw.Close()

	return vm.InterpretChunk(chunk)
}
