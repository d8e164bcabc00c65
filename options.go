package siew

import (
	"io"
	"os"

	"github.com/ArcE404/siewlang/internal/flushio"
)

// VMOption configures a VM at construction.
type VMOption interface{ apply(vm *VM) }

// WithOutput directs program output (printed results) to w.
func WithOutput(w io.Writer) VMOption { return withOutput(w) }

// WithErrorOutput directs compile and runtime diagnostics to w.
func WithErrorOutput(w io.Writer) VMOption { return withErrorOutput(w) }

// WithLogf enables instruction tracing through the given printf-style
// function.
func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }

// VMOptions flattens any number of options into one.
func VMOptions(opts ...VMOption) VMOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

var defaultOptions = VMOptions(
	withOutput(os.Stdout),
	withErrorOutput(os.Stderr),
)

type noption struct{}

func (noption) apply(vm *VM) {}

type options []VMOption

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(vm)
		}
	}
}

type outputOption struct{ io.Writer }
type errorOutputOption struct{ io.Writer }
type withLogfn func(mess string, args ...interface{})

func withOutput(w io.Writer) outputOption           { return outputOption{w} }
func withErrorOutput(w io.Writer) errorOutputOption { return errorOutputOption{w} }

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o errorOutputOption) apply(vm *VM) {
	vm.errw = o.Writer
}

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}
