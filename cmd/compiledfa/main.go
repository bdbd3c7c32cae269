/*
Compiledfa compiles a structured DFA document into either C matcher source
or a Graphviz DOT visualization, dispatching by the output file's
extension.

Usage:

	compiledfa [flags] <input> <output>

The flags are:

	-v, --version
		Give the current version of compileDFA and then exit.

	--log FILE
		Write diagnostics to the given log file instead of the default
		"log.txt" in the current working directory.

	--config FILE
		Read the name table's capacity knobs from the given TOML file
		instead of using the compiled-in defaults.

	--row-count, --max-same-hashes, --max-keys
		Override the name table's fixed-capacity knobs directly; any value
		set here takes precedence over --config.

If the output path ends in "c", a C source file implementing
int <name>(const char* str) is written. Otherwise, a Graphviz DOT
visualization of the automaton is written.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/compiledfa/internal/builder"
	"github.com/dekarrin/compiledfa/internal/dfaxml"
	"github.com/dekarrin/compiledfa/internal/diag"
	"github.com/dekarrin/compiledfa/internal/emit/code"
	"github.com/dekarrin/compiledfa/internal/emit/graphviz"
	"github.com/dekarrin/compiledfa/internal/version"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful compilation.
	ExitSuccess = iota

	// ExitArgError indicates a missing or malformed command line.
	ExitArgError

	// ExitCompileError indicates the input document was read but could
	// not be compiled into an automaton.
	ExitCompileError
)

var (
	returnCode = ExitSuccess

	flagVersion      = pflag.BoolP("version", "v", false, "Gives the version info")
	flagLogPath      = pflag.String("log", "log.txt", "Path to write diagnostic output to")
	flagConfigPath   = pflag.String("config", "", "Optional TOML file overriding the name table's capacity knobs")
	flagRowCount     = pflag.Int("row-count", 0, "Override the name table's row count (0 uses the default)")
	flagMaxSameHash  = pflag.Int("max-same-hashes", 0, "Override the name table's per-row bucket bound (0 uses the default)")
	flagMaxKeys      = pflag.Int("max-keys", 0, "Override the name table's total key budget (0 uses the default)")
)

// fileLimits is the shape of the optional --config TOML file.
type fileLimits struct {
	RowCount      int `toml:"row_count"`
	MaxSameHashes int `toml:"max_same_hashes"`
	MaxKeys       int `toml:"max_keys"`
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	args := pflag.Args()
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: compiledfa [flags] <input>.xml <output>.[dot|c]\n")
		returnCode = ExitArgError
		return
	}
	inputPath, outputPath := args[0], args[1]

	logger, err := diag.Start(*flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitArgError
		return
	}
	defer logger.Stop()

	limits := resolveLimits()

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		diag.Report("reading %s: %v", inputPath, err)
		returnCode = ExitCompileError
		return
	}

	doc, err := dfaxml.ParseString(string(raw))
	if err != nil {
		diag.Report("parsing %s: %v", inputPath, err)
		returnCode = ExitCompileError
		return
	}

	dfa, err := builder.Build(doc, limits)
	if err != nil {
		diag.Report("compiling %s: %v", inputPath, err)
		returnCode = ExitCompileError
		return
	}

	var output string
	if strings.HasSuffix(outputPath, "c") {
		output = code.Emit(dfa)
	} else {
		rendered := graphviz.Render(graphviz.FromAutomaton(dfa))
		// Derived from the rendered content itself, not uuid.New(), so that
		// compiling the same input twice produces a byte-identical
		// provenance stamp as well as a byte-identical graph.
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(rendered))
		output = fmt.Sprintf("// generated %s\n%s", id, rendered)
	}

	if err := os.WriteFile(outputPath, []byte(output), 0o644); err != nil {
		diag.Report("writing %s: %v", outputPath, err)
		returnCode = ExitCompileError
		return
	}
}

func resolveLimits() builder.Limits {
	limits := builder.Limits{}

	if *flagConfigPath != "" {
		var fl fileLimits
		if _, err := toml.DecodeFile(*flagConfigPath, &fl); err != nil {
			diag.Warn("reading config %s: %v", *flagConfigPath, err)
		} else {
			limits.RowCount = fl.RowCount
			limits.MaxSameHashes = fl.MaxSameHashes
			limits.MaxKeys = fl.MaxKeys
		}
	}

	if *flagRowCount != 0 {
		limits.RowCount = *flagRowCount
	}
	if *flagMaxSameHash != 0 {
		limits.MaxSameHashes = *flagMaxSameHash
	}
	if *flagMaxKeys != 0 {
		limits.MaxKeys = *flagMaxKeys
	}

	return limits
}
