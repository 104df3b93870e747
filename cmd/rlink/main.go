// rlink inspects a route manifest and shows what a composite deep link
// resolves to.
//
//	rlink routes  --manifest routes.yaml
//	rlink resolve --manifest routes.yaml [--html] LINK
//	rlink apply   --manifest routes.yaml [--strategy batch] LINK
//
// Settings come from RLINK_* environment variables, then the manifest,
// then flags.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/rohanthewiz/rlink"
	"github.com/rohanthewiz/rlink/consts"
	"github.com/rohanthewiz/rlink/internal/logging"
	"github.com/rohanthewiz/rlink/manifest"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	manifest     string
	html         bool
	strategy     string
	stackParam   string
	conflictMode string
	logLevel     string
}

// apply overrides cfg with the flags that were set.
func (o options) apply(cfg rlink.Config) rlink.Config {
	if o.strategy != "" {
		cfg.Strategy = o.strategy
	}
	if o.stackParam != "" {
		cfg.StackParam = o.stackParam
	}
	if o.conflictMode != "" {
		cfg.ConflictMode = o.conflictMode
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg
}

func (o options) format() string {
	if o.html {
		return consts.FormatHTML
	}
	return consts.FormatText
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errors.New("no command given")
	}

	command := args[0]
	switch command {
	case "routes", "resolve", "apply":
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown command %q", command)
	}

	var opts options
	flagSet := pflag.NewFlagSet("rlink "+command, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.manifest, "manifest", "m", "", "path to the route manifest (YAML)")
	flagSet.BoolVar(&opts.html, "html", false, "write an HTML report instead of text")
	flagSet.StringVar(&opts.strategy, "strategy", "", "back stack strategy: sequential or batch")
	flagSet.StringVar(&opts.stackParam, "stack-param", "", "query parameter holding the stack")
	flagSet.StringVar(&opts.conflictMode, "conflict-mode", "", "first_match, prefer_static or strict")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.manifest == "" {
		return errors.New("--manifest is required")
	}

	var link string
	if command != "routes" {
		if flagSet.NArg() != 1 {
			return fmt.Errorf("%s takes exactly one link argument", command)
		}
		link = flagSet.Arg(0)
	}

	// Validated once all layers are applied
	cfg, err := rlink.EnvConfig()
	if err != nil {
		return err
	}

	m, err := manifest.LoadFile(opts.manifest)
	if err != nil {
		return err
	}

	cfg = opts.apply(m.Config(cfg))
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewText(stderr, cfg.LogLevel)

	entries, err := m.Entries()
	if err != nil {
		return err
	}
	reg, err := rlink.NewRegistry(entries, rlink.WithConflictMode(cfg.ConflictModeValue()))
	if err != nil {
		return err
	}

	nav := rlink.NewNavigator(reg, rlink.WithConfig(cfg), rlink.WithLogger(logger))

	var rep report
	switch command {
	case "routes":
		rep = routesReport(reg)

	case "resolve":
		routes, err := nav.Resolve(link)
		if err != nil {
			return err
		}
		rep = resolvedReport(reg, link, routes)

	case "apply":
		host := rlink.NewMemoryHost()
		if err := nav.NavigateTo(host, link); err != nil {
			return err
		}
		rep = stackReport(link, host)
	}

	return rep.write(stdout, opts.format())
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `rlink resolves composite deep links against a route manifest.

Usage:
  rlink routes  --manifest FILE [--html]
  rlink resolve --manifest FILE [--html] LINK
  rlink apply   --manifest FILE [--strategy sequential|batch] [--html] LINK

Flags:
  -m, --manifest FILE        route manifest (YAML)
      --html                 write an HTML report
      --strategy NAME        sequential or batch
      --stack-param NAME     query parameter holding the stack (default "stack")
      --conflict-mode NAME   first_match, prefer_static or strict
      --log-level LEVEL      debug, info, warn or error

Environment:
  RLINK_STACK_PARAM, RLINK_STRATEGY, RLINK_CONFLICT_MODE, RLINK_LOG_LEVEL
`)
}
