package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"
)

type options struct {
	theme   string
	width   int
	lenient bool
	verbose bool
}

type cliApp struct {
	stdout      io.Writer
	opts        options
	cfgPath     string
	flagChanged func(name string) bool
	log         zerolog.Logger
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(normalizeLegacyArgs(argv))
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context, positionals []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	app.log = newLogger(os.Stderr, app.opts.verbose)

	cfg, err := LoadConfig(app.cfgPath)
	if err != nil {
		return err
	}
	app.applyFlagOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	app.opts.theme = cfg.Render.Theme
	app.opts.width = cfg.Render.Width
	app.opts.lenient = cfg.Render.Lenient

	if len(positionals) == 0 {
		return errors.New("missing input: provide a Go source file or a package")
	}
	target := positionals[0]

	files, err := app.loadTarget(ctx, target)
	if err != nil {
		return err
	}

	var docs DocCollection
	for _, file := range files {
		docs = append(docs, collectDocs(file)...)
	}
	app.log.Debug().
		Str("target", target).
		Int("files", len(files)).
		Int("items", len(docs)).
		Msg("collected documentation items")

	renderer := termRenderer{
		theme:   app.opts.theme,
		width:   app.opts.width,
		lenient: app.opts.lenient,
		log:     app.log,
	}
	// Render into a scratch buffer so a conversion failure leaves stdout
	// untouched.
	var buf bytes.Buffer
	for _, item := range docs {
		if err := renderer.renderItem(&buf, item); err != nil {
			return err
		}
	}
	_, err = app.stdout.Write(buf.Bytes())
	return err
}

// Explicitly set flags win over config file and environment values.
func (app *cliApp) applyFlagOverrides(cfg *Config) {
	if app.flagChanged == nil {
		return
	}
	if app.flagChanged("theme") {
		cfg.Render.Theme = app.opts.theme
	}
	if app.flagChanged("width") {
		cfg.Render.Width = app.opts.width
	}
	if app.flagChanged("lenient") {
		cfg.Render.Lenient = app.opts.lenient
	}
}

// loadTarget resolves the positional argument into parsed syntax trees. A
// path ending in .go is parsed directly; anything else is treated as a
// package directory or pattern and resolved through go/packages.
func (app *cliApp) loadTarget(ctx context.Context, target string) ([]*ast.File, error) {
	if strings.HasSuffix(target, ".go") {
		fset := token.NewFileSet()
		file, err := parser.ParseFile(fset, target, nil, parser.ParseComments)
		if err != nil {
			return nil, err
		}
		return []*ast.File{file}, nil
	}
	pkg, err := loadPackage(ctx, target)
	if err != nil {
		return nil, err
	}
	if len(pkg.Syntax) == 0 {
		return nil, fmt.Errorf("no Go source files in %q", target)
	}
	return pkg.Syntax, nil
}

func loadPackage(ctx context.Context, pattern string) (*packages.Package, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedFiles |
			packages.NeedCompiledGoFiles | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no Go packages matched %q", pattern)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("%s", pkg.Errors[0])
	}
	return pkg, nil
}

var legacyLongFlagSet = map[string]struct{}{
	"theme":   {},
	"width":   {},
	"lenient": {},
	"verbose": {},
	"config":  {},
	"version": {},
}

func normalizeLegacyArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	modified := false
	converted := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			converted = append(converted, arg)
			converted = append(converted, args[i+1:]...)
			if i != len(args)-1 {
				modified = true
			}
			break
		}
		if !strings.HasPrefix(arg, "-") || strings.HasPrefix(arg, "--") || arg == "-" {
			converted = append(converted, arg)
			continue
		}
		if len(arg) == 2 {
			converted = append(converted, arg)
			continue
		}
		if idx := strings.Index(arg, "="); idx > 0 {
			name := arg[1:idx]
			if _, ok := legacyLongFlagSet[name]; ok {
				converted = append(converted, "--"+name+arg[idx:])
				modified = true
				continue
			}
		}
		name := arg[1:]
		if _, ok := legacyLongFlagSet[name]; ok {
			converted = append(converted, "--"+name)
			modified = true
			continue
		}
		converted = append(converted, arg)
	}
	if !modified && len(converted) == len(args) {
		return args
	}
	return converted
}
