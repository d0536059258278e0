// Package tinyps provides the public API for the interpreter.
package tinyps

import (
	"io"
	"os"

	"nickandperla.net/tinyps/internal/eval"
	"nickandperla.net/tinyps/internal/parser"
	"nickandperla.net/tinyps/internal/scanner"
	"nickandperla.net/tinyps/internal/store"
)

// Runtime is the interpreter runtime: a Context wired to an engine,
// optionally backed by a definition store.
type Runtime struct {
	ctx    *eval.Context
	interp *eval.Interpreter
	st     store.Store

	lexical bool
	out     io.Writer
	trace   eval.TraceFunc
}

// New creates a new runtime with the given options. When a definition
// store is attached, every stored definition is executed through the
// normal pipeline to repopulate the dictionary chain; definitions that
// no longer parse or run are skipped.
func New(opts ...Option) *Runtime {
	r := &Runtime{}
	for _, opt := range opts {
		opt(r)
	}

	ctxOpts := []eval.Option{}
	if r.lexical {
		ctxOpts = append(ctxOpts, eval.WithLexicalScoping())
	}
	if r.out != nil {
		ctxOpts = append(ctxOpts, eval.WithOutput(r.out))
	}
	if r.st != nil {
		ctxOpts = append(ctxOpts, eval.WithDefinitionStore(r.st))
	}

	r.ctx = eval.NewContext(ctxOpts...)
	r.interp = eval.NewInterpreter(r.ctx)
	if r.trace != nil {
		r.interp.SetTrace(r.trace)
	}

	if r.st != nil {
		r.loadDefinitions()
	}

	return r
}

// loadDefinitions replays stored definition source into the context.
func (r *Runtime) loadDefinitions() {
	names, err := r.st.List()
	if err != nil {
		return
	}
	for _, name := range names {
		src, err := r.st.Get(name)
		if err != nil || src == "" {
			continue
		}
		// A stale definition is skipped, not fatal.
		_ = r.Run(src)
	}
}

// Run tokenizes, parses, and executes a program. The first error
// aborts; partial effects remain (nothing is rolled back).
func (r *Runtime) Run(src string) error {
	vals, err := parser.ParseString(src)
	if err != nil {
		return err
	}
	return r.interp.Execute(vals)
}

// RunReader executes a program from a reader.
func (r *Runtime) RunReader(reader io.Reader) error {
	vals, err := parser.Parse(scanner.New(reader))
	if err != nil {
		return err
	}
	return r.interp.Execute(vals)
}

// RunFile executes a file's contents as one program.
func (r *Runtime) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.RunReader(f)
}

// Context returns the runtime's interpreter context for inspection.
func (r *Runtime) Context() *eval.Context {
	return r.ctx
}

// Close releases resources.
func (r *Runtime) Close() error {
	if r.st != nil {
		return r.st.Close()
	}
	return nil
}
