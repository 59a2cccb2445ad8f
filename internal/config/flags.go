package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into generation, behavior, display, and utility.
// Precedence is defaults < config file < explicit flags < positional args.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Version is shown in --version and help; override at build time with
// -ldflags "-X github.com/backmassage/boxgen/internal/config.Version=...".
var Version = "1.0.0-dev"

// ParseFlags parses args (without the program name) into cfg, loading the
// config file in between. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, too many positional args).
func ParseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("boxgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printUsage(os.Stderr) }

	// Override flags: captured then applied after Parse so config file
	// values hold unless the user passes the flag.
	var negated negatedFlags

	defineGenerationFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			negated.showHelp = true
		} else {
			return err
		}
	}

	if negated.showHelp {
		printUsage(os.Stderr)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "boxgen v"+Version)
		os.Exit(0)
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if err := loadConfigFile(cfg, explicit); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)
	return parsePositionalArgs(fs.Args(), cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either override a mode (forceColor, noColor) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineGenerationFlags registers -t/--target, --package, --runtime, --prefix, --config.
func defineGenerationFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Var(&targetValue{&cfg.Target}, "target", "Output target: vue | go")
	fs.Var(&targetValue{&cfg.Target}, "t", "Same as --target")
	fs.StringVar(&cfg.Package, "package", cfg.Package, "Go package name (go target)")
	fs.StringVar(&cfg.Runtime, "runtime", cfg.Runtime, "Import path of the boxicon runtime (go target)")
	fs.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "Filename prefix stripped before naming")
	fs.StringVar(&cfg.ConfigFile, "config", "", "TOML config file")
}

// defineBehaviorFlags registers dry-run, strict, manifest, watch.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not write files")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.Strict, "strict", false, "Fail on duplicate names within a pack")
	fs.BoolVar(&cfg.Manifest, "manifest", false, "Also write icons.yaml")
	fs.BoolVar(&cfg.Watch, "watch", false, "Regenerate when SVG files change")
	fs.BoolVar(&cfg.Watch, "w", false, "Same as --watch")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets InputDir and OutputDir from up to two optional
// positional args; missing ones keep their configured values.
func parsePositionalArgs(args []string, cfg *Config) error {
	if len(args) > 2 {
		return fmt.Errorf("too many arguments (want at most svg_dir and output_dir, got %d)", len(args))
	}
	if len(args) >= 1 {
		cfg.InputDir = NormalizeDirArg(args[0])
	}
	if len(args) == 2 {
		cfg.OutputDir = NormalizeDirArg(args[1])
	}
	return nil
}

// printUsage writes the help text to w. Column-aligned for readability.
func printUsage(w io.Writer) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "boxgen v" + Version + ": Boxicons SVG to component generator"},
		{"", ""},
		{"  boxgen [OPTIONS] [svg_dir] [output_dir]", ""},
		{"", ""},
		{"Generation", ""},
		{"  -t, --target <vue|go>", "Output target (default: vue)"},
		{"  --package <name>", "Go package name (default: boxicons)"},
		{"  --runtime <path>", "Import path of the boxicon runtime"},
		{"  --prefix <text>", "Filename prefix to strip (default: bx-)"},
		{"  --config <path>", "TOML config file (default: " + DefaultConfigFile + " if present)"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -d, --dry-run", "Preview only; do not write files"},
		{"  --strict", "Fail on duplicate names within a pack"},
		{"  --manifest", "Also write icons.yaml"},
		{"  -w, --watch", "Regenerate when SVG files change"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Diagnostics (packs, output dir, target)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapter so the Target enum can be used with flag.Var.

type targetValue struct{ p *Target }

func (t *targetValue) String() string {
	if t.p == nil {
		return ""
	}
	return string(*t.p)
}

func (t *targetValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "vue":
		*t.p = TargetVue
	case "go":
		*t.p = TargetGo
	default:
		return fmt.Errorf("invalid target %q (use 'vue' or 'go')", s)
	}
	return nil
}
