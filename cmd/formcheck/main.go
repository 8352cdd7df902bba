// Command formcheck reconciles a JSON submission against an HCL form
// definition and prints the accepted values, the changed controls and the
// validation errors.
//
//	formcheck -form signup.hcl -submission post.json [-values current.json] [-dump]
//	formcheck -decode TOKEN
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/dmitrymomot/forms/core/config"
	"github.com/dmitrymomot/forms/core/form"
	"github.com/dmitrymomot/forms/core/formdef"
	"github.com/dmitrymomot/forms/core/logger"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// report is the JSON document printed for a reconciliation.
type report struct {
	Accepted form.Values         `json:"accepted"`
	Changed  []string            `json:"changed"`
	Trigger  string              `json:"trigger,omitempty"`
	Invalid  map[string][]string `json:"invalid"`
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("formcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		defPath    = fs.String("form", "", "path to the HCL form definition")
		subPath    = fs.String("submission", "", "path to the JSON submission")
		valuesPath = fs.String("values", "", "path to JSON values seeded before reconciling")
		dump       = fs.Bool("dump", false, "dump the changed-set to stderr")
		decode     = fs.String("decode", "", "decode an obfuscated token and exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	format := logger.WithTextFormatter()
	if cfg.LogFormat == "json" {
		format = logger.WithJSONFormatter()
	}
	log := logger.New(format, logger.WithOutput(stderr), logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))

	obf, err := cfg.obfuscator()
	if err != nil {
		return fmt.Errorf("obfuscator: %w", err)
	}

	if *decode != "" {
		if obf == nil {
			return errors.New("decode: FORMCHECK_OBFUSCATOR is none")
		}
		id, err := obf.Decode(*decode)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		_, err = fmt.Fprintln(stdout, id)
		return err
	}

	if *defPath == "" || *subPath == "" {
		fs.Usage()
		return errors.New("-form and -submission are required")
	}

	opts := []formdef.Option{
		formdef.WithLogger(log),
		formdef.WithDefaultHandler(func(context.Context, *form.Form) error {
			log.InfoContext(ctx, "submit handler triggered", logger.Component("formcheck"))
			return nil
		}),
	}
	if obf != nil {
		opts = append(opts, formdef.WithObfuscator(obf))
	}
	f, err := formdef.New(opts...).LoadFile(*defPath)
	if err != nil {
		return err
	}

	if *valuesPath != "" {
		initial, err := readValues(*valuesPath)
		if err != nil {
			return err
		}
		if err := f.SetValues(initial); err != nil {
			return err
		}
	}

	submission, err := readValues(*subPath)
	if err != nil {
		return err
	}

	res, err := f.Reconcile(submission, nil)
	if err != nil {
		return err
	}
	if *dump {
		spew.Fdump(stderr, res.Changed)
	}

	out := report{
		Accepted: res.Values,
		Changed:  res.Changed.Paths(),
		Invalid:  map[string][]string{},
	}
	if out.Changed == nil {
		out.Changed = []string{}
	}
	for _, c := range f.Validate() {
		out.Invalid[c.SubmitPath()] = c.Errors()
	}
	if res.Trigger != nil {
		out.Trigger = res.Trigger.Name()
		if len(out.Invalid) == 0 {
			if err := f.Handle(ctx, res); err != nil {
				return err
			}
		}
	}

	log.DebugContext(ctx, "submission checked",
		logger.Component("formcheck"),
		logger.Count("invalid", len(out.Invalid)),
		slog.Bool("triggered", res.Trigger != nil),
	)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func readValues(path string) (form.Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var v form.Values
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}
