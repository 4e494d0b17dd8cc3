// sha256cavp validates the digest engine against NIST CAVP response
// files and JSON vector corpora.
//
// Usage:
//
//	sha256cavp [-json corpus.json] file.rsp...
//
// Monte Carlo files are recognized by their Seed record and run
// through the full chained-iteration procedure; message files are
// verified vector by vector. A summary table is printed to standard
// output and the exit code is 1 if any vector fails or any file
// cannot be processed.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/markkurossi/tabulate"
	"github.com/spf13/pflag"

	"github.com/fips180/sha256/cavp"
)

type fileResult struct {
	name    string
	typ     string
	result  cavp.Result
	elapsed time.Duration
	err     error
}

func main() {
	flags := pflag.NewFlagSet("sha256cavp", pflag.ContinueOnError)
	corpus := flags.String("json", "", "JSON vector corpus to verify")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if flags.NArg() == 0 && *corpus == "" {
		fmt.Fprintln(os.Stderr, "usage: sha256cavp [-json corpus.json] file.rsp...")
		os.Exit(1)
	}

	var results []fileResult
	for _, file := range flags.Args() {
		results = append(results, verifyFile(file))
	}
	if *corpus != "" {
		results = append(results, verifyCorpus(*corpus))
	}

	if !report(results, os.Stdout, os.Stderr) {
		os.Exit(1)
	}
}

// verifyFile parses and verifies one response file.
func verifyFile(path string) fileResult {
	fr := fileResult{
		name: path,
		typ:  "Msg",
	}

	f, err := os.Open(path)
	if err != nil {
		fr.err = err
		return fr
	}
	defer f.Close()

	resp, err := cavp.ParseResponse(f)
	if err != nil {
		fr.err = fmt.Errorf("%s: %w", path, err)
		return fr
	}

	start := time.Now()
	if resp.Monte() {
		fr.typ = "Monte"
		fr.result, fr.err = cavp.VerifyMonte(resp)
	} else {
		fr.result = cavp.Verify(resp)
	}
	fr.elapsed = time.Since(start)

	return fr
}

// verifyCorpus verifies a JSON vector corpus.
func verifyCorpus(path string) fileResult {
	fr := fileResult{
		name: path,
		typ:  "JSON",
	}

	vectors, err := cavp.LoadCorpus(path)
	if err != nil {
		fr.err = err
		return fr
	}

	start := time.Now()
	fr.result = cavp.VerifyCorpus(vectors)
	fr.elapsed = time.Since(start)

	return fr
}

// report prints the summary table and mismatch details, and reports
// whether every file passed.
func report(results []fileResult, stdout, stderr io.Writer) bool {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("File").SetAlign(tabulate.ML)
	tab.Header("Type").SetAlign(tabulate.ML)
	tab.Header("Vectors").SetAlign(tabulate.MR)
	tab.Header("Passed").SetAlign(tabulate.MR)
	tab.Header("Skipped").SetAlign(tabulate.MR)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("Result").SetAlign(tabulate.ML)

	ok := true
	for _, fr := range results {
		row := tab.Row()
		row.Column(fr.name)
		row.Column(fr.typ)

		if fr.err != nil {
			ok = false
			row.Column("-")
			row.Column("-")
			row.Column("-")
			row.Column("-")
			row.Column("ERROR").SetFormat(tabulate.FmtBold)
			fmt.Fprintf(stderr, "error: %v\n", fr.err)
			continue
		}

		row.Column(fmt.Sprintf("%d", fr.result.Total))
		row.Column(fmt.Sprintf("%d", fr.result.Passed))
		row.Column(fmt.Sprintf("%d", fr.result.Skipped))
		row.Column(fr.elapsed.Round(time.Millisecond).String())

		if fr.result.OK() {
			row.Column("PASS")
		} else {
			ok = false
			row.Column("FAIL").SetFormat(tabulate.FmtBold)
			mm := fr.result.First
			fmt.Fprintf(stderr, "%s: vector %d: got %s, want %s\n",
				fr.name, mm.Index, mm.Got, mm.Want)
		}
	}

	tab.Print(stdout)
	return ok
}
