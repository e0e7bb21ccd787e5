package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/unifiedrt/urprint/trace"
	"github.com/unifiedrt/urprint/urinfo"
)

func main() {
	var (
		traceFile   = flag.String("trace", "", "Path to capture file")
		listDomains = flag.Bool("domains", false, "List known property domains and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
		noColor     = flag.Bool("no-color", false, "Disable styled output")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		trace.SetLogger(logger)
	}

	if *listDomains {
		names := urinfo.DomainNames()
		sort.Strings(names)
		fmt.Println(strings.Join(names, "\n"))
		return
	}

	if *traceFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: urtrace -trace <file> [-i] [-v] [-no-color]")
		fmt.Fprintln(os.Stderr, "       urtrace -domains")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*traceFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*traceFile, *noColor); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(traceFile string, noColor bool) error {
	f, err := os.Open(traceFile)
	if err != nil {
		return fmt.Errorf("open capture: %w", err)
	}
	defer f.Close()

	capture, err := trace.ParseCapture(f)
	if err != nil {
		return fmt.Errorf("parse capture: %w", err)
	}

	styled := !noColor && term.IsTerminal(int(os.Stdout.Fd()))
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#98FB98"))

	for _, e := range capture.Entries {
		name := e.Call
		if styled {
			name = header.Render(name)
		}
		fmt.Printf("%s:\n", name)
		if err := trace.RenderEntry(os.Stdout, e); err != nil {
			return fmt.Errorf("render %s: %w", e.Call, err)
		}
	}
	return nil
}
