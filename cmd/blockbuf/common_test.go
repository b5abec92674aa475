package main

import (
	"flag"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/I-Am-Dench/blockbuf/blockbuffer"
)

func writeDump(t *testing.T, fill string) string {
	path := filepath.Join(t.TempDir(), "dump.txt")
	dump := strings.Repeat(strings.Repeat(fill, blockbuffer.BlockWidth)+"\n", blockbuffer.Rows)
	if err := os.WriteFile(path, []byte(dump), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommandListNames(t *testing.T) {
	expected := []string{"crc", "show", "store"}
	if names := Commands.Names(); !slices.Equal(names, expected) {
		t.Errorf("expected %v but got %v", expected, names)
	}

	expected = []string{"delete", "get", "list", "put"}
	if names := StoreCommands.Names(); !slices.Equal(names, expected) {
		t.Errorf("expected %v but got %v", expected, names)
	}
}

func TestCommandListRun(t *testing.T) {
	var called string
	var received []string

	list := CommandList{
		"a": func(args []string) { called, received = "a", args },
		"b": func(args []string) { called, received = "b", args },
	}

	list.Run([]string{"b", "-x", "file"})
	if called != "b" {
		t.Fatalf("expected b but got %q", called)
	}

	if !slices.Equal(received, []string{"-x", "file"}) {
		t.Errorf("unexpected args: %v", received)
	}
}

func TestReadMapFile(t *testing.T) {
	flagset := flag.NewFlagSet("test", flag.ContinueOnError)
	flagset.Parse([]string{writeDump(t, "c2")})

	m := readMap(flagset, 0)
	if m.Width() != blockbuffer.BlockWidth {
		t.Fatalf("expected width %d but got %d", blockbuffer.BlockWidth, m.Width())
	}

	if !blockbuffer.IsCoin(m.BlockAt(3, 4)) {
		t.Errorf("expected coin but got %#02x", m.BlockAt(3, 4))
	}
}

func TestReadMapStdin(t *testing.T) {
	stdin, err := os.Open(writeDump(t, "10"))
	if err != nil {
		t.Fatal(err)
	}
	defer stdin.Close()

	previous := os.Stdin
	os.Stdin = stdin
	defer func() { os.Stdin = previous }()

	for _, args := range [][]string{{}, {"-"}} {
		if _, err := stdin.Seek(0, 0); err != nil {
			t.Fatal(err)
		}

		flagset := flag.NewFlagSet("test", flag.ContinueOnError)
		flagset.Parse(args)

		if cv := readMap(flagset, 0).BlockAt(0, 0); cv != 0x10 {
			t.Errorf("%v: expected 0x10 but got %#02x", args, cv)
		}
	}
}
