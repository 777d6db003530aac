package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"strconv"
	"strings"
)

// ErrVariableNotFound is returned when an identifier has no value.
var ErrVariableNotFound = errors.New("not found")

// Resolver supplies a value for a variable missing from the environment.
type Resolver interface {
	Resolve(name string) (int64, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (int64, error)

func (f ResolverFunc) Resolve(name string) (int64, error) { return f(name) }

// Env maps variable names to their value.
type Env struct {
	vars     map[string]int64
	fallback Resolver // Optional.
}

// NewEnv creates an empty environment. A nil fallback means unknown
// variables fail right away.
func NewEnv(fallback Resolver) *Env {
	return &Env{
		vars:     map[string]int64{},
		fallback: fallback,
	}
}

// Set defines or overrides a variable.
func (e *Env) Set(name string, value int64) {
	e.vars[name] = value
}

// Get returns the value of a variable, without consulting the fallback.
func (e *Env) Get(name string) (int64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Vars returns a copy of the defined variables.
func (e *Env) Vars() map[string]int64 {
	return maps.Clone(e.vars)
}

// Lookup returns the value of a variable. Values obtained from the fallback
// are kept so a variable is resolved at most once.
func (e *Env) Lookup(name string) (int64, error) {
	if v, ok := e.vars[name]; ok {
		return v, nil
	}
	if e.fallback == nil {
		return 0, fmt.Errorf("variable %s %w", name, ErrVariableNotFound)
	}
	v, err := e.fallback.Resolve(name)
	if err != nil {
		return 0, fmt.Errorf("variable %s %w", name, ErrVariableNotFound)
	}
	e.vars[name] = v
	return v, nil
}

// PromptResolver asks for missing values interactively.
type PromptResolver struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptResolver writes prompts to out and reads one line per answer from in.
func NewPromptResolver(in io.Reader, out io.Writer) *PromptResolver {
	return &PromptResolver{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Resolve blocks until a line is read. The line must be a base 10 integer.
func (r *PromptResolver) Resolve(name string) (int64, error) {
	if _, err := fmt.Fprintf(r.out, "Enter value for %s: ", name); err != nil {
		return 0, fmt.Errorf("prompt %q: %w", name, err)
	}
	line, err := r.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return 0, fmt.Errorf("read %q: %w", name, err)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", name, err)
	}
	return v, nil
}
