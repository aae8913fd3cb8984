// huffcodes - print the Huffman code for the symbols of a text
//
// Usage:
//
//	huffcodes [-bytes] [-tree] [-text STRING] [file]
//
// The input is the -text argument if given, otherwise the named file,
// otherwise stdin.  Runes are counted unless -bytes is given.  The output is
// one row per symbol, in tree order:
//
//	SYMBOL  WEIGHT  HUFFMAN CODE
//	'f'     45      0
//	...
//
// followed by the total number of bits needed to encode the input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/hufftree"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffcodes: ")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("huffcodes", flag.ContinueOnError)
	countBytes := fs.Bool("bytes", false, "count bytes instead of runes")
	showTree := fs.Bool("tree", false, "also dump the Huffman tree")
	text := fs.String("text", "", "encode this string instead of reading input")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return errors.Errorf("expected at most one file argument, got %d", fs.NArg())
	}

	freqs, err := readFrequencies(fs, *text, *countBytes, stdin)
	if err != nil {
		return err
	}

	tree, err := hufftree.Build(freqs)
	if err != nil {
		return errors.Wrap(err, "failed to build Huffman tree")
	}

	if *showTree {
		if _, err := hufftree.Dump(stdout, tree); err != nil {
			return errors.Wrap(err, "failed to write tree")
		}
	}

	return printRows(stdout, hufftree.Rows(tree))
}

func readFrequencies(fs *flag.FlagSet, text string, countBytes bool, stdin io.Reader) (hufftree.Frequencies, error) {
	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	if setFlags["text"] {
		if fs.NArg() != 0 {
			return nil, errors.New("-text and a file argument are mutually exclusive")
		}
		if countBytes {
			return hufftree.CountBytes([]byte(text)), nil
		}
		return hufftree.CountRunes(text), nil
	}

	input := stdin
	if name := fs.Arg(0); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %q", name)
		}
		defer f.Close()
		input = f
	}

	if countBytes {
		return hufftree.ReadBytes(input)
	}
	return hufftree.ReadRunes(input)
}

func printRows(w io.Writer, rows []hufftree.Row) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tWEIGHT\tHUFFMAN CODE")
	var total uint64
	for _, row := range rows {
		fmt.Fprintf(tw, "%v\t%d\t%s\n", row.Symbol, row.Weight, row.Code.Bits())
		total += row.Weight * uint64(row.Code.Size())
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write table")
	}
	_, err := fmt.Fprintf(w, "weighted length: %d bits\n", total)
	return err
}
