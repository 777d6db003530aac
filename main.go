package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/interpreter"
	"go.creack.net/arith/lexer"
	"go.creack.net/arith/parser"
)

// varsFlag collects repeated -var name=value flags.
type varsFlag map[string]int64

func (v varsFlag) String() string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]string, 0, len(v))
	for _, name := range names {
		out = append(out, fmt.Sprintf("%s=%d", name, v[name]))
	}
	return strings.Join(out, ",")
}

func (v varsFlag) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fmt.Errorf("value of %q: %w", name, err)
	}
	v[strings.TrimSpace(name)] = n
	return nil
}

type promptMode string

const (
	promptAuto   promptMode = "auto"
	promptAlways promptMode = "always"
	promptNever  promptMode = "never"
)

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// checkFile makes sure path names an existing regular file.
func checkFile(path string) error {
	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("File not found: %s!", path)
	}
	if err != nil || !fi.Mode().IsRegular() {
		return fmt.Errorf("Not a file: %s!", path)
	}
	return nil
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(argv[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	vars := varsFlag{}
	flags.Var(vars, "var", "Set a variable, `name=value`. Can be repeated.")
	prompt := flags.String("prompt", string(promptAuto), "Ask for unknown variables: auto (when stdin is a terminal), always or never.")
	dumpAST := flags.Bool("ast", false, "Print the parsed expression tree.")
	verbose := flags.Bool("v", false, "Enable debug logs.")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [options] <file>\n", argv[0])
		flags.PrintDefaults()
	}
	if err := flags.Parse(argv[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := log.New(stderr, "arith: ", 0)
	if !*verbose {
		logger.SetOutput(io.Discard)
	}

	if flags.NArg() == 0 {
		fmt.Fprintf(stdout, "Usage: %s [options] <file>\n", argv[0])
		return 0
	}

	var resolver interpreter.Resolver
	switch promptMode(*prompt) {
	case promptAlways:
		resolver = interpreter.NewPromptResolver(stdin, stdout)
	case promptAuto:
		if isTerminal(stdin) {
			resolver = interpreter.NewPromptResolver(stdin, stdout)
		}
	case promptNever:
	default:
		fmt.Fprintf(stderr, "invalid -prompt %q, expected one of auto, always, never\n", *prompt)
		return 2
	}

	path := flags.Arg(0)
	if err := checkFile(path); err != nil {
		fmt.Fprintln(stdout, err)
		return 1
	}
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdout, "Failed to read %s: %s\n", path, err)
		return 1
	}
	logger.Printf("Read %d bytes from %q.", len(src), path)
	if *verbose {
		for tok := range lexer.New(string(src)).All() {
			logger.Printf("Token %s.", tok)
		}
	}

	opts := []interpreter.Option{
		interpreter.WithResolver(resolver),
		interpreter.WithParsedHook(func(expr ast.Expr) {
			logger.Printf("Parsed %s.", ast.Dump(expr))
			if *dumpAST {
				fmt.Fprintf(stdout, "ast: %s\n", ast.Dump(expr))
				pretty.Fprintf(stdout, "%# v\n", expr)
			}
		}),
	}
	in := interpreter.New(parser.New(lexer.New(string(src))), opts...)
	for name, value := range vars {
		in.Set(name, value)
	}

	result, err := in.Interpret()
	if err != nil {
		logger.Printf("Interpret %q: %s.", path, err)
		fmt.Fprintf(stdout, "Failed to parse: %s\n", err)
		return 0
	}
	fmt.Fprintf(stdout, "result: %d\n", result)
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}
