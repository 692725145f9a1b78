package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/zephyrtronium/rpncalc"
)

// demo is evaluated when no expressions are given.
const demo = "11 + (exp(2.010635 + sin(PI/2) * 3) + 50) / 2"

func main() {
	log.SetFlags(0)
	var (
		inname        string
		echo, verbose bool
		listSymbols   bool
	)
	flag.StringVar(&inname, "in", "", "file of expressions, one per line (- for stdin)")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.BoolVar(&verbose, "v", false, "log each evaluation stage")
	flag.BoolVar(&listSymbols, "symbols", false, "print known symbols and exit")
	flag.Parse()

	if listSymbols {
		printSymbols(os.Stdout, rpncalc.DefaultTable())
		return
	}

	lg := logrus.New()
	lg.SetOutput(os.Stderr)
	if verbose {
		lg.SetLevel(logrus.DebugLevel)
	}

	srcs := flag.Args()
	if inname != "" {
		f, err := infile(inname)
		if err != nil {
			log.Fatal(err)
		}
		lines, err := readLines(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, lines...)
	}
	if len(srcs) == 0 {
		srcs = []string{demo}
	}

	failed := false
	for _, src := range srcs {
		if !run(os.Stdout, lg, src, echo) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// run evaluates one expression and prints the result. It returns false if
// evaluation failed.
func run(w io.Writer, lg *logrus.Logger, src string, echo bool) bool {
	entry := lg.WithField("expr", src)
	p, err := rpncalc.Compile(src)
	if err != nil {
		logFailure(entry, err)
		fmt.Fprintf(w, "%s = %s\n", src, rpncalc.FormatError(err))
		return false
	}
	entry.WithField("postfix", p.String()).Debug("converted")
	if echo {
		fmt.Fprintf(w, "%v : ", p)
	}
	r, err := p.Eval()
	if err != nil {
		logFailure(entry, err)
		fmt.Fprintf(w, "%s = %s\n", src, rpncalc.FormatError(err))
		return false
	}
	entry.WithField("value", r).Debug("evaluated")
	fmt.Fprintf(w, "%s = %s\n", src, rpncalc.Format(r))
	return true
}

func logFailure(entry *logrus.Entry, err error) {
	entry = entry.WithField("kind", rpncalc.KindOf(err).Error())
	if pe, ok := err.(rpncalc.InputError); ok {
		entry = entry.WithField("col", pe.Pos())
	}
	entry.WithError(err).Debug("failed")
}

func printSymbols(w io.Writer, tab *rpncalc.Table) {
	for _, sym := range tab.Symbols() {
		op, _ := tab.Lookup(sym)
		switch op.Kind() {
		case rpncalc.OpConst:
			fmt.Fprintf(w, "%-5s %-6s %v\n", sym, op.Kind(), op.Value())
		default:
			fmt.Fprintf(w, "%-5s %-6s prec %d\n", sym, op.Kind(), op.Prec())
		}
	}
}

// infile opens the named input file, or stdin for "-".
func infile(inname string) (io.ReadCloser, error) {
	if inname == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(inname)
}

// readLines reads the non-blank lines of r. Input with a UTF-16 or UTF-8 byte
// order mark is decoded accordingly; anything else is read as UTF-8.
func readLines(r io.Reader) ([]string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(r, dec))
	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
