// sha256sum computes the SHA-256 digest of a literal string, a
// file's contents, or one line of standard input.
//
// Usage:
//
//	sha256sum -s "string to hash"
//	sha256sum -f filename.txt
//	sha256sum
//
// With no flags the program reads a single line from standard input,
// prompting first when the input is a terminal. The digest is printed
// as "SHA-256: " followed by 64 lowercase hex characters. The exit
// code is 0 on success and 1 on a usage error or I/O failure.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/fips180/sha256"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := pflag.NewFlagSet("sha256sum", pflag.ContinueOnError)
	text := flags.StringP("string", "s", "", "hash the literal string")
	file := flags.StringP("file", "f", "", "hash the raw contents of the file")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.Changed("string") && flags.Changed("file") {
		return errors.New("flags -s and -f are mutually exclusive")
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %q", flags.Arg(0))
	}

	var input []byte
	switch {
	case flags.Changed("string"):
		input = []byte(*text)

	case flags.Changed("file"):
		data, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("cannot open file: %w", err)
		}
		input = data

	default:
		line, err := readLine(stdin, stdout)
		if err != nil {
			return err
		}
		input = line
	}

	fmt.Fprintf(stdout, "SHA-256: %s\n", sha256.Hash(input))
	return nil
}

// readLine reads one line from stdin, prompting first when stdin is
// a terminal so piped input stays clean.
func readLine(stdin io.Reader, stdout io.Writer) ([]byte, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(stdout, "Enter string to hash: ")
	}

	// EOF without a newline still yields the partial line; an empty
	// input hashes the empty message, as the reference tool does.
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cannot read standard input: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return []byte(line), nil
}
