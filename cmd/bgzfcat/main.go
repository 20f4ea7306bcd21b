// Command bgzfcat compresses or decompresses a file using the BGZF parallel
// block codec, as a smoke-test caller for github.com/grailbio/bgzf.
//
// Usage:
//
//	bgzfcat -d < in.bgzf > out
//	bgzfcat < in > out.bgzf
package main

import (
	"flag"
	"io"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bgzf/encoding/bgzf"
)

var (
	decompress = flag.Bool("d", false, "decompress stdin instead of compressing it")
	threads    = flag.Int("threads", 0, "worker goroutines per batch; 0 picks the package default")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()
	flag.Parse()

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("bgzfcat: %v", err)
	}
}

func run(in io.Reader, out io.Writer) error {
	opts := bgzf.Options{Threads: *threads}
	if *decompress {
		r := bgzf.NewStreamReaderOpts(in, opts)
		if _, err := io.Copy(out, r); err != nil {
			return errors.E(err, "decompress")
		}
		return nil
	}

	w := bgzf.NewStreamWriterOpts(out, opts)
	if _, err := io.Copy(w, in); err != nil {
		return errors.E(err, "compress")
	}
	if err := w.Close(); err != nil {
		return errors.E(err, "close")
	}
	return nil
}
