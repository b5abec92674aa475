package main

import (
	"flag"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/I-Am-Dench/blockbuf/blockbuffer"
)

type CommandList map[string]func(args []string)

func (list *CommandList) Names() []string {
	keys := []string{}
	for key := range *list {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func (list *CommandList) Usage() {
	log.Fatalf("expected subcommand: {%s}", strings.Join(list.Names(), "|"))
}

func (list *CommandList) Run(args []string) {
	if len(args) < 1 {
		list.Usage()
	}

	command, ok := (*list)[args[0]]
	if !ok {
		list.Usage()
	}

	command(args[1:])
}

// readMap decodes the dump named by the i-th argument of flagset, or
// standard input when the argument is missing or "-".
func readMap(flagset *flag.FlagSet, i int) *blockbuffer.Map {
	input := os.Stdin
	if name := flagset.Arg(i); len(name) > 0 && name != "-" {
		file, err := os.Open(name)
		if err != nil {
			Error.Fatal(err)
		}
		defer file.Close()
		input = file
	}

	Verbose.Printf("reading dump from %s", input.Name())
	buf, err := blockbuffer.ReadDump(input)
	if err != nil {
		Error.Fatal(err)
	}

	m, err := blockbuffer.Decode(buf)
	if err != nil {
		Error.Fatal(err)
	}

	Verbose.Printf("decoded %d columns", m.Width())
	return m
}

func GetArgName(flagset *flag.FlagSet, i int, message ...string) string {
	m := "no name provided"
	if len(message) > 0 {
		m = message[0]
	}

	if flagset.NArg() < i+1 {
		Error.Fatal(m)
	}

	return flagset.Args()[i]
}
