// Package main provides the CLI entrypoint for bundle-generator.
//
// bundle-generator is a Go codegen tool that:
//   - Scans Go packages (AST + go/types) for records carrying //bundle: directives
//   - Merges source directives with an optional YAML manifest
//   - Plans wrapper names, tag types and modes, collecting diagnostics
//   - Emits one gofmt-clean file per record
package main

import (
	"flag"
	"fmt"
	"go/types"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/m1gwings/treedrawer/tree"

	"bundle-generator/internal/analyze"
	"bundle-generator/internal/diagnostic"
	"bundle-generator/internal/directive"
	"bundle-generator/internal/gen"
	"bundle-generator/internal/manifest"
	"bundle-generator/internal/plan"
)

const (
	exitOK    = 0
	exitErr   = 1
	exitUsage = 2
)

// debugEnv keeps an .unformatted.go sidecar next to files gofmt rejects.
const debugEnv = "BUNDLE_GENERATOR_DEBUG"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// A .env file is optional; absence is the normal case.
	_ = godotenv.Load()

	if len(args) < 1 {
		usage()

		return exitUsage
	}

	switch args[0] {
	case "gen":
		return runGen(args[1:])
	case "check":
		return runCheck(args[1:])
	case "describe":
		return runDescribe(args[1:])
	case "help", "-h", "-help", "--help":
		usage()

		return exitOK
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage()

		return exitUsage
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `bundle-generator decomposes annotated records into per-field wrapper types.

Usage:

  bundle-generator gen      -pkg <pattern> [-manifest file] [-tags ordinal|named] [-out dir] [-v]
  bundle-generator check    -pkg <pattern> [-manifest file] [-v]
  bundle-generator describe -pkg <pattern> [-manifest file] [-v]

A pattern is a Go package pattern such as ./... or a full import path. The
-pkg flag repeats; its patterns are merged with the packages named by the
manifest's decomposition entries.
`)
}

// patternList collects repeated -pkg flags.
type patternList []string

func (p *patternList) String() string { return strings.Join(*p, ",") }

func (p *patternList) Set(v string) error {
	*p = append(*p, v)

	return nil
}

func runGen(args []string) int {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)

	var patterns patternList

	fs.Var(&patterns, "pkg", "package pattern to scan (repeatable)")

	var (
		manifestPath = fs.String("manifest", "", "path to a bundle.yaml manifest")
		tags         = fs.String("tags", "", "default tag strategy: ordinal or named")
		out          = fs.String("out", "", "write generated files here instead of each package's directory")
		verbose      = fs.Bool("v", false, "enable debug logging")
	)

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	setupLogging(*verbose)

	p, code := resolvePlan(patterns, *manifestPath, *tags)
	if code != exitOK {
		return code
	}

	g := gen.NewGenerator(gen.GeneratorConfig{
		OutputDir:        *out,
		DebugUnformatted: os.Getenv(debugEnv) == "1",
	})

	files, err := g.Generate(p)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)

		return exitErr
	}

	if err := gen.WriteFiles(files); err != nil {
		fmt.Fprintln(os.Stderr, "write:", err)

		return exitErr
	}

	for _, f := range files {
		slog.Debug("wrote generated file", "dir", f.Dir, "file", f.Filename)
	}

	fmt.Printf("generated %d file(s) for %d record(s)\n", len(files), p.RecordCount())

	return exitOK
}

func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)

	var patterns patternList

	fs.Var(&patterns, "pkg", "package pattern to scan (repeatable)")

	var (
		manifestPath = fs.String("manifest", "", "path to a bundle.yaml manifest")
		verbose      = fs.Bool("v", false, "enable debug logging")
	)

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	setupLogging(*verbose)

	p, code := resolvePlan(patterns, *manifestPath, "")
	if code != exitOK {
		return code
	}

	fmt.Printf("ok: %d record(s) across %d package(s)\n", p.RecordCount(), len(p.Packages))

	return exitOK
}

func runDescribe(args []string) int {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)

	var patterns patternList

	fs.Var(&patterns, "pkg", "package pattern to scan (repeatable)")

	var (
		manifestPath = fs.String("manifest", "", "path to a bundle.yaml manifest")
		verbose      = fs.Bool("v", false, "enable debug logging")
	)

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	setupLogging(*verbose)

	p, code := resolvePlan(patterns, *manifestPath, "")
	if code != exitOK {
		return code
	}

	for _, pkg := range p.Packages {
		for _, d := range pkg.Decompositions {
			fmt.Println(describeTree(pkg, d, p.RegistryImport))
		}
	}

	return exitOK
}

// resolvePlan runs load, merge and resolve, prints every diagnostic, and
// returns a nil plan with the exit code when the pipeline cannot continue.
func resolvePlan(patterns []string, manifestPath, tags string) (*plan.Plan, int) {
	man := manifest.Empty()

	if manifestPath != "" {
		var err error

		man, err = manifest.LoadFile(manifestPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			return nil, exitErr
		}
	}

	strategy, ok := plan.ParseTagStrategy(tags)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown -tags value %q: want %q or %q\n", tags, "ordinal", "named")

		return nil, exitUsage
	}

	all := mergePatterns(patterns, man.PackagePatterns())
	if len(all) == 0 {
		fmt.Fprintln(os.Stderr, "no packages to scan: pass -pkg or list packages in the manifest")

		return nil, exitUsage
	}

	slog.Debug("loading packages", "patterns", all)

	scan, err := analyze.NewAnalyzer().LoadPackages(all...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return nil, exitErr
	}

	p := plan.NewResolver(scan, man, plan.Config{DefaultTags: strategy}).Resolve()
	printDiagnostics(&p.Diagnostics)

	if p.Diagnostics.HasErrors() {
		return nil, exitErr
	}

	return p, exitOK
}

// mergePatterns unions CLI patterns with manifest patterns, first occurrence
// wins the position.
func mergePatterns(cli, fromManifest []string) []string {
	seen := make(map[string]bool)

	var all []string

	for _, p := range append(append([]string{}, cli...), fromManifest...) {
		if seen[p] {
			continue
		}

		seen[p] = true

		all = append(all, p)
	}

	return all
}

func printDiagnostics(d *diagnostic.Diagnostics) {
	for _, dg := range d.Infos {
		fmt.Fprintln(os.Stderr, "info:", dg.String())
	}

	for _, dg := range d.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", dg.String())
	}

	for _, dg := range d.Errors {
		fmt.Fprintln(os.Stderr, "error:", dg.String())
	}
}

// setupLogging routes debug logs to stderr when -v is given. The tool stays
// quiet otherwise.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// describeTree renders one planned decomposition for eyeballing.
func describeTree(pkg *plan.PackagePlan, d *plan.Decomposition, registryImport string) string {
	label := fmt.Sprintf("%s.%s [%s %s]", pkg.Name, d.Record.ID.Name, modeWord(d.Mode), d.Strategy)
	root := tree.NewTree(tree.NodeString(label))

	fields := root.AddChild(tree.NodeString("fields"))
	for _, f := range d.Fields {
		n := fields.AddChild(tree.NodeString(f.Field.Name + " " + displayType(f.Field.Type)))
		n.AddChild(tree.NodeString(f.Alias + " [" + f.Tag + "]"))
	}

	switch d.Mode {
	case directive.ModeComponent:
		bundle := root.AddChild(tree.NodeString("bundle " + d.Bundle))
		for _, f := range d.Fields {
			bundle.AddChild(tree.NodeString(f.Member))
		}

		if d.Marked {
			bundle.AddChild(tree.NodeString("Marker " + d.Marker))
		}

	case directive.ModeResource:
		dispatch := root.AddChild(tree.NodeString("dispatch " + registryImport))
		dispatch.AddChild(tree.NodeString("InsertInto(*Registry)"))
		dispatch.AddChild(tree.NodeString("QueueInto(*CommandBuffer)"))
	}

	return root.String()
}

func modeWord(m directive.Mode) string {
	switch m {
	case directive.ModeComponent:
		return directive.FlagComponent
	case directive.ModeResource:
		return directive.FlagResource
	default:
		return m.String()
	}
}

// displayType renders a field type with bare package names, which reads
// better in a terminal than full import paths.
func displayType(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string { return p.Name() })
}
