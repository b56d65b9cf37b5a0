// Command xmllint parses one or more XML files (or stdin) and reports
// any parse error, or dumps the resulting tree when asked to reformat.
package main

import (
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"

	xmlparser "github.com/Keinier/XMLParser"
)

type cmdopts struct {
	Format  bool `long:"format" description:"reformat and print the document instead of only checking it"`
	Version bool `long:"version" description:"display the version of the XML library used"`
}

func main() {
	os.Exit(run())
}

func showVersion() {
	fmt.Printf("xmllint: using XMLParser version %s\n", xmlparser.Version)
}

func showUsage() {
	fmt.Printf(`Usage: xmllint [options] file ...
  Parse the given XML files (or stdin, if none are given) and report
  any parse error found. With --format, print each document reformatted
  instead.
	--version : display the version of the XML library used
`)
}

func run() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	var readers []namedReader
	if len(args) > 0 {
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			defer f.Close()
			readers = append(readers, namedReader{path, f})
		}
	} else {
		readers = append(readers, namedReader{"-", os.Stdin})
	}

	status := 0
	for _, nr := range readers {
		if !lintOne(nr, opts.Format) {
			status = 1
		}
	}
	return status
}

type namedReader struct {
	name string
	r    io.Reader
}

func lintOne(nr namedReader, format bool) bool {
	doc := xmlparser.NewDocument()
	if err := doc.LoadReader(nr.r); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", nr.name, err)
		return false
	}
	if doc.Error() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", nr.name, doc.ErrorStr())
		return false
	}

	if format {
		out, err := doc.XMLString()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", nr.name, err)
			return false
		}
		fmt.Fprint(os.Stdout, out)
	}
	return true
}
