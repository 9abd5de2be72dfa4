package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/atomiclang/atomic/pkg/compiler/lexer"
	"github.com/atomiclang/atomic/pkg/compiler/parser"
	"github.com/atomiclang/atomic/pkg/interp"
)

func main() {
	if len(os.Args) < 3 || os.Args[1] != "run" {
		fmt.Println("Usage: atomic run <script.atomic> [-trace]")
		os.Exit(1)
	}

	runCmd := flag.NewFlagSet("run", flag.ExitOnError)
	trace := runCmd.Bool("trace", false, "Dump tokens and statements before executing")

	scriptPath := os.Args[2]
	runCmd.Parse(os.Args[3:])

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.Logger())

	// One correlation id per script run.
	log := slog.With("run_id", uuid.NewString(), "script", scriptPath)

	src, err := os.ReadFile(scriptPath)
	if err != nil {
		log.Error("Failed to read script", "error", err)
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	if *trace {
		dumpPipeline(src)
	}

	start := time.Now()
	if err := interp.Run(src, os.Stdout); err != nil {
		log.Error("Run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Info("Run complete", "duration", time.Since(start))
}

// dumpPipeline prints the token and statement sequences, mirroring the
// interpreter's own front-end stages. Errors are left for the real run
// to report.
func dumpPipeline(src []byte) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return
	}

	fmt.Fprint(os.Stderr, "Tokens:")
	for _, tok := range tokens {
		fmt.Fprintf(os.Stderr, " %s", tok.Kind)
	}
	fmt.Fprintln(os.Stderr)

	prog, err := parser.Parse(tokens, src)
	if err != nil {
		return
	}

	fmt.Fprint(os.Stderr, "Statements:")
	for _, stmt := range prog.Statements {
		fmt.Fprintf(os.Stderr, " %s", stmt)
	}
	fmt.Fprintln(os.Stderr)
}
