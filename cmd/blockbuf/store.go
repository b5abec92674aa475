package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/I-Am-Dench/blockbuf/blockbuffer"
	"github.com/I-Am-Dench/blockbuf/store"
)

func openStore(dsn string) *store.Store {
	Verbose.Printf("opening %s", dsn)
	s, err := store.Open(dsn)
	if err != nil {
		Error.Fatal(err)
	}
	return s
}

func storeFlags(name string) (*flag.FlagSet, *string) {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)
	dsn := flagset.String("db", "blockbuf.db", "The sqlite database to use.")
	return flagset, dsn
}

func storePut(args []string) {
	flagset, dsn := storeFlags("store:put")
	flagset.Parse(args)

	name := GetArgName(flagset, 0)
	m := readMap(flagset, 1)

	s := openStore(*dsn)
	defer s.Close()

	if err := s.Put(name, m); err != nil {
		Error.Fatal(err)
	}
	Info.Printf("stored %s (%d columns, crc %08x)", name, m.Width(), m.Checksum())
}

func storeGet(args []string) {
	flagset, dsn := storeFlags("store:get")
	format := flagset.String("format", "rust", "Output style: rust or go.")
	flagset.Parse(args)

	name := GetArgName(flagset, 0)

	style, err := blockbuffer.ParseStyle(*format)
	if err != nil {
		Error.Fatal(err)
	}

	s := openStore(*dsn)
	defer s.Close()

	m, err := s.Get(name)
	if errors.Is(err, store.ErrNotFound) {
		Error.Fatalf("map does not exist: %s", name)
	}

	if err != nil {
		Error.Fatal(err)
	}

	switch style {
	case blockbuffer.StyleGo:
		fmt.Print(blockbuffer.GoLiteral(name, m))
	default:
		if err := blockbuffer.WriteLiteral(os.Stdout, m.Dump()); err != nil {
			Error.Fatal(err)
		}
	}
}

func storeList(args []string) {
	flagset, dsn := storeFlags("store:list")
	flagset.Parse(args)

	s := openStore(*dsn)
	defer s.Close()

	entries, err := s.List()
	if err != nil {
		Error.Fatal(err)
	}

	tab := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tab, "name\twidth\tcrc")
	for _, entry := range entries {
		fmt.Fprintf(tab, "%s\t%d\t%08x\n", entry.Name, entry.Width, entry.Crc)
	}
	tab.Flush()
}

func storeDelete(args []string) {
	flagset, dsn := storeFlags("store:delete")
	flagset.Parse(args)

	name := GetArgName(flagset, 0)

	s := openStore(*dsn)
	defer s.Close()

	if err := s.Delete(name); err != nil {
		Error.Fatal(err)
	}
	Info.Printf("deleted %s", name)
}

var StoreCommands = CommandList{
	"put":    storePut,
	"get":    storeGet,
	"list":   storeList,
	"delete": storeDelete,
}

func doStore(args []string) {
	StoreCommands.Run(args)
}
