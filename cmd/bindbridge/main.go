// Package main provides the CLI entrypoint for bindbridge.
//
// bindbridge resolves the binding declarations of bound elements and checks
// them against a host-scope fixture:
//   - resolve: print the binding set, delegates and sync mapping of every
//     binding in a declaration file (YAML) or template (HTML)
//   - check: wire every binding of a declaration file against its scope
//     fixture and report undeclared bindings
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"bindbridge/internal/bind"
	"bindbridge/internal/bindingerr"
	"bindbridge/internal/component"
	"bindbridge/internal/config"
	"bindbridge/internal/mapping"
	"bindbridge/internal/match"
	"bindbridge/internal/resolve"
	"bindbridge/internal/template"
)

const usage = `bindbridge - resolve and check two-way binding declarations

Usage:
  bindbridge resolve [-format yaml|text] [-o file] <file.yaml|file.html|URL>
  bindbridge check <file.yaml|URL>
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	bind.SetLogger(logger.Named("bind"))

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	app := &app{
		cache:  resolve.NewCache(cfg.CacheSize),
		logger: logger,
		out:    os.Stdout,
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "resolve":
		err = app.runResolve(ctx, os.Args[2:])
	case "check":
		err = app.runCheck(ctx, os.Args[2:])
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stdout, usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}

	if err != nil {
		config.Exitf("Error: %v", err)
	}
}

type app struct {
	cache  *resolve.Cache
	logger *zap.Logger
	out    io.Writer
}

func (a *app) runResolve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	format := fs.String("format", "yaml", "output format (yaml, text)")
	output := fs.String("o", "", "write the plan to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return errors.New("resolve expects exactly one input")
	}

	df, err := a.load(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	plan, resolveErr := mapping.Resolve(df, a.cache)

	switch {
	case *output != "":
		if err := mapping.WriteFile(plan, *output); err != nil {
			return err
		}
	case *format == "text":
		writeText(a.out, plan)
	case *format == "yaml":
		data, err := mapping.Marshal(plan)
		if err != nil {
			return err
		}

		if _, err := a.out.Write(data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	return resolveErr
}

func (a *app) runCheck(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return errors.New("check expects exactly one input")
	}

	df, err := a.load(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	if !df.HasScope() {
		return errors.New("check needs a scope fixture in the declaration file")
	}

	failed := 0

	for _, b := range df.Bindings {
		if err := a.checkBinding(df, b); err != nil {
			failed++

			fmt.Fprintf(a.out, "FAIL %s: %v\n", b.Name, err)

			var berr *bindingerr.Error
			if errors.As(err, &berr) && berr.Kind == bindingerr.KindUndeclaredBinding {
				if near, ok := match.Closest(berr.Expr, df.NewScope().Paths(), match.DefaultThreshold); ok {
					fmt.Fprintf(a.out, "     did you mean %q?\n", near)
				}
			}

			continue
		}

		fmt.Fprintf(a.out, "ok   %s\n", b.Name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d bindings failed", failed, len(df.Bindings))
	}

	return nil
}

func (a *app) checkBinding(df *mapping.DeclarationFile, b mapping.BindingDecl) error {
	decl, err := a.cache.Resolve(b.Input())
	if err != nil {
		return err
	}

	host := df.NewScope()

	binding, err := bind.Bind(decl, host, component.NewReactive(), template.Element{Name: b.Name})
	if err != nil {
		return err
	}
	defer binding.Close()

	return host.Digest()
}

// load reads a declaration file, or scans an HTML template into one.
func (a *app) load(ctx context.Context, location string) (*mapping.DeclarationFile, error) {
	ext := strings.ToLower(filepath.Ext(location))
	if ext != ".html" && ext != ".htm" {
		df, err := mapping.LoadURL(ctx, location)
		if err != nil {
			return nil, err
		}

		if res := mapping.Validate(df); !res.IsEmpty() {
			for _, w := range res.Warnings {
				a.logger.Warn("declaration file", zap.String("diagnostic", w.String()))
			}

			if err := res.Error(); err != nil {
				return nil, err
			}
		}

		return df, nil
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open template %s: %w", location, err)
	}
	defer f.Close()

	els, err := template.Scan(f)
	if err != nil {
		return nil, err
	}

	df := &mapping.DeclarationFile{Version: mapping.CurrentVersion}
	for _, el := range els {
		df.Bindings = append(df.Bindings, mapping.BindingDecl{
			Name:       el.Label(),
			Expose:     el.Expose(),
			Attributes: el.Attributes,
		})
	}

	return df, nil
}

func writeText(w io.Writer, plan *mapping.Plan) {
	for _, b := range plan.Bindings {
		fmt.Fprintf(w, "%s\n", b.Name)

		if b.Error != "" {
			fmt.Fprintf(w, "  error: %s\n", b.Error)
			continue
		}

		d := b.Declarations
		fmt.Fprintf(w, "  paths:     %s\n", strings.Join(d.Paths, ", "))
		fmt.Fprintf(w, "  delegates: %s\n", strings.Join(d.Delegates, ", "))

		for _, prop := range d.SyncProperties() {
			fmt.Fprintf(w, "  sync:      %s <-> %s\n", prop, d.Sync[prop])
		}

		for _, diag := range slices.Concat(d.Diagnostics.Warnings, d.Diagnostics.Infos) {
			fmt.Fprintf(w, "  note:      %s\n", diag.String())
		}
	}
}
