// Command lspng lists the header and text chunks of PNG files.
//
// Usage:
//
//	lspng [-crc] [-inflate] [-json] [-v] <file|-> [file ...]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ysh86/lspng/png"
	"github.com/ysh86/lspng/report"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "lspng: ", 0)

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	checksum := fs.Bool("crc", false, "verify chunk CRCs")
	inflate := fs.Bool("inflate", false, "inflate compressed iTXt text")
	asJSON := fs.Bool("json", false, "write JSON")
	verbose := fs.Bool("v", false, "log skipped chunks")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage of %s:\n", args[0])
		fmt.Fprintln(stderr, "  string")
		fmt.Fprintln(stderr, "\tsrc file (\"-\" for stdin)")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	var opts []png.Option
	if *checksum {
		opts = append(opts, png.WithChecksum())
	}
	if *inflate {
		opts = append(opts, png.WithInflate())
	}

	status := 0
	multi := fs.NArg() > 1
	var files []report.File
	for i, srcFile := range fs.Args() {
		fileOpts := opts
		if *verbose {
			name := srcFile
			fileOpts = append(fileOpts[:len(fileOpts):len(fileOpts)], png.WithSkipFunc(func(typ string, length uint32) {
				logger.Printf("%s: skipped chunk '%s' (%d bytes)", name, typ, length)
			}))
		}

		chunks, err := decodeFile(srcFile, stdin, fileOpts)
		if err != nil {
			logger.Printf("%s: %v", srcFile, err)
			status = 1
			continue
		}

		switch {
		case *asJSON && multi:
			files = append(files, report.File{Name: srcFile, Chunks: chunks})
			continue
		case *asJSON:
			err = report.WriteJSON(stdout, chunks)
		default:
			if multi {
				if i > 0 {
					fmt.Fprintln(stdout)
				}
				fmt.Fprintf(stdout, "==> %s <==\n", srcFile)
			}
			err = report.WriteText(stdout, chunks)
		}
		if err != nil {
			logger.Printf("%s: %v", srcFile, err)
			return 1
		}
	}

	// several files are written as one document
	if *asJSON && multi {
		if err := report.WriteJSONFiles(stdout, files); err != nil {
			logger.Print(err)
			return 1
		}
	}

	return status
}

func decodeFile(srcFile string, stdin io.Reader, opts []png.Option) ([]png.Chunk, error) {
	var (
		buf []byte
		err error
	)
	if srcFile == "-" {
		buf, err = io.ReadAll(stdin)
	} else {
		buf, err = os.ReadFile(srcFile)
	}
	if err != nil {
		return nil, err
	}

	return png.Decode(buf, opts...)
}
