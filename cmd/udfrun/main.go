// Command udfrun runs one table transform on a fixture file and prints the result.
//
//	udfrun -func timebucket -input testdata/trucks.yaml -kw window=600000000000
//	udfrun -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"

	"github.com/rulego/tableudf"
	"github.com/rulego/tableudf/config"
	"github.com/rulego/tableudf/logger"
	"github.com/rulego/tableudf/types"
	"github.com/rulego/tableudf/utils/table"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "udfrun: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("udfrun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "YAML config file; TABLEUDF__* env vars override it")
		funcName    = fs.String("func", "", "function to run; defaults to the fixture's function")
		inputPath   = fs.String("input", "-", "fixture file (YAML or JSON), - for stdin")
		format      = fs.String("format", "table", "output format: table or yaml")
		list        = fs.Bool("list", false, "list the enabled functions and exit")
		showMetrics = fs.Bool("metrics", false, "print invocation metrics to stderr after the run")
		kwargs      = kwFlags{}
	)
	fs.Var(kwargs, "kw", "named argument key=value (repeatable)")
	if err := fs.Parse(argv); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	options := []tableudf.Option{tableudf.WithConfig(cfg), tableudf.WithLogOutput(stderr, levelOf(cfg))}
	var reg *prometheus.Registry
	if *showMetrics {
		reg = prometheus.NewRegistry()
		options = append(options, tableudf.WithMetrics(reg))
	}
	engine := tableudf.New(options...)

	if *list {
		return printFunctions(stdout, engine)
	}

	fx, err := openFixture(*inputPath, stdin)
	if err != nil {
		return err
	}
	name := *funcName
	if name == "" {
		name = fx.Function
	}
	if name == "" {
		return fmt.Errorf("no function given: use -func or set function in the fixture")
	}
	in, err := fx.Table()
	if err != nil {
		return err
	}
	params := mergeParams(fx, kwargs)

	out, err := engine.Transform(name, in, params)
	if reg != nil {
		if dumpErr := dumpMetrics(stderr, reg); dumpErr != nil && err == nil {
			err = dumpErr
		}
	}
	if err != nil {
		return err
	}

	switch *format {
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		defer enc.Close()
		return enc.Encode(FixtureFromTable(out))
	case "table":
		table.PrintTable(stdout, out)
		return nil
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func levelOf(cfg types.Config) logger.Level {
	level, _ := logger.ParseLevel(cfg.Log.Level)
	return level
}

func openFixture(path string, stdin io.Reader) (*Fixture, error) {
	if path == "-" {
		return ReadFixture(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFixture(f)
}

// mergeParams lets -kw flags override the fixture's kwargs.
func mergeParams(fx *Fixture, kwargs kwFlags) *types.Params {
	merged := make(map[string]any, len(fx.KwArgs)+len(kwargs))
	for k, v := range fx.KwArgs {
		merged[k] = v
	}
	for k, v := range kwargs {
		merged[k] = v
	}
	return types.NewParams(fx.Args, merged)
}

func printFunctions(w io.Writer, engine *tableudf.Engine) error {
	t := types.NewTable(
		[]string{"name", "type", "category", "description"},
		types.Repeat(types.String, 4),
	)
	for _, name := range engine.Functions() {
		info, err := engine.Describe(name)
		if err != nil {
			return err
		}
		if err := t.AppendRow(info.Name, string(info.Type), info.Category, info.Description); err != nil {
			return err
		}
	}
	table.PrintTable(w, t)
	return nil
}

func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
