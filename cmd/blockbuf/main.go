package main

import (
	"flag"
	"log"
	"os"
)

var VerboseFlag bool

type verboseWriter struct{}

func (v *verboseWriter) Write(b []byte) (int, error) {
	if VerboseFlag {
		return os.Stderr.Write(b)
	} else {
		return len(b), nil
	}
}

var (
	Info    = log.New(os.Stdout, "blockbuf: ", 0)
	Error   = log.New(os.Stderr, "blockbuf: ", 0)
	Verbose = log.New(&verboseWriter{}, "blockbuf: ", 0)
)

var Commands = CommandList{
	"show":  doShow,
	"crc":   doCrc,
	"store": doStore,
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("blockbuf: ")

	flag.BoolVar(&VerboseFlag, "v", false, "Enables verbose logging.")
	flag.Parse()

	Commands.Run(flag.Args())
}
