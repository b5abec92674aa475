package main

import (
	"flag"
	"fmt"
	"os"
)

func doShow(args []string) {
	flagset := flag.NewFlagSet("show", flag.ExitOnError)
	legend := flagset.Bool("legend", false, "Prints the glyph legend after the map.")
	flagset.Parse(args)

	m := readMap(flagset, 0)
	if err := m.Render(os.Stdout); err != nil {
		Error.Fatal(err)
	}

	if *legend {
		fmt.Println()
		fmt.Println(". empty  o coin  ? question  H climb  # solid  + other")
	}
}

func doCrc(args []string) {
	flagset := flag.NewFlagSet("crc", flag.ExitOnError)
	flagset.Parse(args)

	m := readMap(flagset, 0)
	fmt.Printf("%08x\n", m.Checksum())
}
