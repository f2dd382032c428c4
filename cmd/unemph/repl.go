package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hazyhaar/unemph/pkg/normalize"
)

func cmdREPL(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	cfgPath := configFlag(fs)
	dict := fs.String("dict", "", "dictionary ID (default: bundled list)")
	fs.Parse(args)

	a, err := setup(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	return runREPL(os.Stdin, os.Stdout, a.svc, *dict)
}

// runREPL normalizes each line of in, stemmed, until a line equal to "q" or EOF.
func runREPL(in io.Reader, out io.Writer, svc *normalize.Service, dict string) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if line == "q" {
			return nil
		}
		res, err := svc.Normalize(dict, line, true)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Normalize phonetic: %s\n", res.Result)
		fmt.Fprintln(out, "Normalize combination:")
		for _, c := range svc.Combinations(line, true).Candidates {
			fmt.Fprintf(out, "\t%s\n", c)
		}
	}
	return sc.Err()
}

func cmdNormalize(args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ExitOnError)
	cfgPath := configFlag(fs)
	stem := fs.Bool("stem", false, "stem the result")
	dict := fs.String("dict", "", "dictionary ID (default: bundled list)")
	explain := fs.Bool("explain", false, "print the decision trace as JSON")
	fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("no tokens given")
	}

	a, err := setup(*cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()
	return runNormalize(os.Stdout, a.svc, fs.Args(), *dict, *stem, *explain)
}

// runNormalize prints "token<TAB>result" per token, or one JSON trace per line.
func runNormalize(out io.Writer, svc *normalize.Service, tokens []string, dict string, stem, explain bool) error {
	enc := json.NewEncoder(out)
	for _, token := range tokens {
		if explain {
			tr, err := svc.Explain(dict, token, stem)
			if err != nil {
				return err
			}
			if err := enc.Encode(tr); err != nil {
				return err
			}
			continue
		}
		res, err := svc.Normalize(dict, token, stem)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\n", token, res.Result)
	}
	return nil
}
