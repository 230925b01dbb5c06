package main

import (
	"os"

	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pNoCodesDefault = false
var pHelp, pBase64, pFast, pNormal, pJSON, pNoCodes, pQuiet, pRounds, pStrict, pString, pTime, pVersion, pDebug bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	/* These must be known before the help text below is coloured. */
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	BoolVarP(&pBase64, "base64", "b", false,
		purp+"render digests in base64"+zero+" (default hex)")

	BoolVar(&pDebug, "debug", false, "")
	CommandLine.MarkHidden("debug")

	BoolVarP(&pFast, "fast", "f", false,
		purp+"use fast mode: 8 rounds, no temporal diffusion"+zero)

	BoolVarP(&pJSON, "json", "j", false,
		purp+"print one JSON object per digest"+zero+" (enables --no-codes)")

	BoolVarP(&pNormal, "normal", "n", false,
		purp+"use normal mode: 20 to 32 rounds"+zero+" (default)")

	BoolVar(&pNoCodes, "no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	BoolVar(&pQuiet, "quiet", pQuiet,
		purp+"suppress non-breaking errors and print ONLY digests"+zero+
			n+"(enables --no-codes)")

	BoolVarP(&pRounds, "rounds", "r", false,
		purp+"print the number of rounds applied to each block"+zero)

	BoolVar(&pStrict, "strict", false,
		purp+"cause chronosum to panic on any error"+zero)

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be hashed"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to read and hash each message"+zero)

	BoolVarP(&pVersion, "version", "v", false,
		purp+"print version information"+zero)

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
}

// parse reads the command line. It is kept out of init so that test binaries, whose arguments
// belong to the testing package, never reach pflag.
func parse() {
	Parse()
	pStrict = pStrict || pDebug
	pNoCodes = pNoCodes || pQuiet || pJSON
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}
}
