// Command infratext applies Infra string algorithms to text read from files or
// standard input and writes the result to standard output.
//
// Usage:
//
//	infratext [-op list] [file ...]
//
// The -op flag takes a comma-separated list of operations that are applied in
// order:
//
//	scalar              replace surrogates with U+FFFD
//	strip-newlines      remove LF and CR
//	normalize-newlines  turn CR LF and CR into LF
//	trim                strip leading and trailing ASCII whitespace
//	collapse            strip and collapse ASCII whitespace
//
// When every operation can work on a stream, the input is never held in
// memory as a whole.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/scalecode-solutions/infra"
	"golang.org/x/text/transform"
)

// operation is one step of the pipeline. Operations without a transformer need
// the whole text at once.
type operation struct {
	transformer func() transform.Transformer
	apply       func(string) string
}

var operations = map[string]operation{
	"scalar":             {infra.ScalarValueConverter, infra.ConvertToScalarValue},
	"strip-newlines":     {infra.NewlineStripper, infra.StripNewlines},
	"normalize-newlines": {infra.NewlineNormalizer, infra.NormalizeNewlines},
	"trim":               {nil, infra.StripLeadingAndTrailingASCIIWhitespace},
	"collapse":           {nil, infra.StripAndCollapseASCIIWhitespace},
}

func main() {
	log.SetPrefix("infratext: ")
	log.SetFlags(0)

	ops := flag.String("op", "normalize-newlines", "comma-separated list of operations")
	flag.Parse()

	pipeline, err := parseOperations(*ops)
	if err != nil {
		log.Fatal(err)
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		if err := run(os.Stdout, os.Stdin, pipeline); err != nil {
			log.Fatal(err)
		}
		return
	}
	for _, name := range inputs {
		if err := runFile(os.Stdout, name, pipeline); err != nil {
			log.Fatal(err)
		}
	}
}

// parseOperations turns the -op flag value into a pipeline.
func parseOperations(list string) ([]operation, error) {
	var pipeline []operation
	for _, name := range strings.Split(list, ",") {
		name = infra.StripLeadingAndTrailingASCIIWhitespace(name)
		if name == "" {
			continue
		}
		op, ok := operations[name]
		if !ok {
			return nil, fmt.Errorf("unknown operation %q", name)
		}
		pipeline = append(pipeline, op)
	}
	if len(pipeline) == 0 {
		return nil, errors.New("no operations given")
	}
	return pipeline, nil
}

func runFile(w io.Writer, name string, pipeline []operation) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := run(w, f, pipeline); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// run copies r to w through the pipeline.
func run(w io.Writer, r io.Reader, pipeline []operation) error {
	transformers := make([]transform.Transformer, 0, len(pipeline))
	for _, op := range pipeline {
		if op.transformer == nil {
			break
		}
		transformers = append(transformers, op.transformer())
	}

	if len(transformers) == len(pipeline) {
		_, err := io.Copy(w, transform.NewReader(r, transform.Chain(transformers...)))
		return err
	}

	text, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s := string(text)
	for _, op := range pipeline {
		s = op.apply(s)
	}
	_, err = io.WriteString(w, s)
	return err
}
