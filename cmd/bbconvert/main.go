// Bbconvert converts block buffer data from its in-memory representation
// (blocks of 13*16 bytes at 0x500-0x5cf and 0x5d0-0x69f) into a 2-D map
// usable in the blockbuf! macro.
//
// Usage:
//
//	bbconvert [-strict] [-format rust|go] [-name name] [-o output] < dump
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/I-Am-Dench/blockbuf/blockbuffer"
)

type Options struct {
	Strict bool
	Style  blockbuffer.Style
	Name   string
}

func convert(r io.Reader, w io.Writer, options Options) error {
	buf, err := blockbuffer.ReadDump(r)
	if err != nil {
		return fmt.Errorf("reading dump: %v", err)
	}

	if !options.Strict && options.Style == blockbuffer.StyleRust {
		return blockbuffer.WriteLiteral(w, buf)
	}

	m, err := blockbuffer.Decode(buf)
	if err != nil {
		return err
	}

	switch options.Style {
	case blockbuffer.StyleGo:
		_, err = io.WriteString(w, blockbuffer.GoLiteral(options.Name, m))
	default:
		err = blockbuffer.WriteLiteral(w, buf)
	}
	return err
}

// run converts r into the file named by output, or standard output when
// output is empty.
func run(r io.Reader, output string, options Options) error {
	if len(output) == 0 {
		writer := bufio.NewWriter(os.Stdout)
		if err := convert(r, writer, options); err != nil {
			return err
		}
		return writer.Flush()
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(file)
	if err := convert(r, writer, options); err != nil {
		file.Close()
		return err
	}

	if err := writer.Flush(); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("bbconvert: ")

	strict := flag.Bool("strict", false, "Reject dumps that are not whole blocks of hex digits.")
	format := flag.String("format", "rust", "Output style: rust or go. The go style implies -strict.")
	name := flag.String("name", "BlockBuffer", "Variable name used by the go style.")
	output := flag.String("o", "", "Write output to `file` instead of standard output.")
	flag.Parse()

	style, err := blockbuffer.ParseStyle(*format)
	if err != nil {
		log.Fatal(err)
	}

	if err := run(os.Stdin, *output, Options{*strict, style, *name}); err != nil {
		log.Fatal(err)
	}
}
