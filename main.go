// Command scenario-report reads motion-dataset scenario files, catalogues
// them in sqlite, and renders reports and charts over the immutable
// scenario record model.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

const cliVersion = "0.1.0"

func usage() {
	fmt.Fprintf(os.Stderr, `scenario-report %s

Usage:
  scenario-report <command> [flags]

Commands:
  ingest     read a dataset file and record scenario summaries in the catalogue
  describe   print record shapes and a summary for one scenario
  slice      write a dataset with every scenario sliced along an axis
  plot       render one scenario as a PNG or HTML chart
  serve      serve the catalogue and charts over HTTP

Run 'scenario-report <command> -h' for command flags.
`, cliVersion)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "ingest":
		err = runIngest(args[1:])
	case "describe":
		err = runDescribe(args[1:])
	case "slice":
		err = runSlice(args[1:])
	case "plot":
		err = runPlot(args[1:])
	case "serve":
		err = runServe(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", args[0], err)
	}
}
