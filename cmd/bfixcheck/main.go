// bfixcheck runs the reference scenarios of the bfix codec and prints the
// expected and computed values to stderr for manual comparison.
// It does not assert anything: the exit code is always 0.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/icza/bfix"
	"github.com/icza/bfix/internal/vectors"
)

func main() {
	vectorsPath := flag.String("vectors", "", "The filepath to a YAML vector file (the built-in vectors are used if empty)")
	verbose := flag.Bool("v", false, "Whether to print every insert step")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("bfixcheck: ")

	var (
		set *vectors.Set
		err error
	)
	if *vectorsPath != "" {
		set, err = vectors.Load(*vectorsPath)
	} else {
		set, err = vectors.Default()
	}
	if err != nil {
		log.Println("Unable to load the vectors:", err)
		return
	}

	run(os.Stderr, set, *verbose)
}

func run(out io.Writer, set *vectors.Set, verbose bool) {
	for i := range set.Scenarios {
		runScenario(out, &set.Scenarios[i], verbose)
		fmt.Fprint(out, "\n\n")
	}

	fmt.Fprint(out, "Error tests.\n\n")
	for _, ec := range set.Errors {
		buf := make([]byte, bfix.SpanBytes(1, bfix.MaxBits)+bfix.Padding)
		e := bfix.Endian(ec.Endian)
		err := bfix.Insert(buf, ec.Offset, ec.Len, 1, e)
		fmt.Fprintf(out, "Insert(offset=%d, len=%d, endian=%d) (code should be %d) = %d\n",
			ec.Offset, ec.Len, ec.Endian, ec.Code, bfix.Code(err))
		_, err = bfix.Extract(buf, ec.Offset, ec.Len, e)
		fmt.Fprintf(out, "Extract(offset=%d, len=%d, endian=%d) (code should be %d) = %d\n",
			ec.Offset, ec.Len, ec.Endian, ec.Code, bfix.Code(err))
	}
}

func runScenario(out io.Writer, sc *vectors.Scenario, verbose bool) {
	fmt.Fprintf(out, "%s.\n\n", sc.Name)

	if verbose {
		for _, st := range sc.Inserts {
			f, err := st.Field()
			if err != nil {
				fmt.Fprintln(out, "    insert:", err)
				continue
			}
			fmt.Fprintf(out, "    insert %v value %#x\n", f, st.Value)
		}
	}

	buf, err := sc.Apply()
	if err != nil {
		fmt.Fprintln(out, "Insert failed:", err)
		return
	}
	if want, err := sc.WantBytes(); err != nil {
		fmt.Fprintln(out, "Bad expected bytes:", err)
	} else {
		fmt.Fprintf(out, "c(should be) = % x\n", want)
	}
	fmt.Fprintf(out, "           c = % x\n", buf)

	for i, st := range sc.Extracts {
		f, err := st.Field()
		if err != nil {
			fmt.Fprintf(out, "f%d: %v\n", i+1, err)
			continue
		}
		u, err := f.Get(buf)
		if err != nil {
			fmt.Fprintf(out, "f%d %v: %v\n", i+1, f, err)
			continue
		}
		if st.Len > 32 {
			fmt.Fprintf(out, "f%d(should be %016x) = %016x\n", i+1, st.Value, u)
		} else {
			fmt.Fprintf(out, "f%d(should be %d) = %d\n", i+1, st.Value, u)
		}
	}
}
