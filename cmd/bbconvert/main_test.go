package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/I-Am-Dench/blockbuf/blockbuffer"
)

func TestConvertEmpty(t *testing.T) {
	output := strings.Builder{}
	if err := convert(strings.NewReader(""), &output, Options{}); err != nil {
		t.Fatal(err)
	}

	expected := "[[],\n [],\n [],\n [],\n [],\n [],\n [],\n [],\n [],\n [],\n [],\n [],\n []]\n"
	if output.String() != expected {
		t.Errorf("expected %q but got %q", expected, output.String())
	}
}

func TestConvertStrict(t *testing.T) {
	dump := strings.Repeat(strings.Repeat("C2", blockbuffer.BlockWidth)+"\n", blockbuffer.Rows)

	output := strings.Builder{}
	if err := convert(strings.NewReader(dump), &output, Options{Strict: true}); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(output.String(), "[[0xC2,0xC2,") {
		t.Errorf("unexpected output: %q", output.String()[:20])
	}

	err := convert(strings.NewReader("0011\n"), &strings.Builder{}, Options{Strict: true})
	if !errors.Is(err, blockbuffer.ErrShortDump) {
		t.Errorf("expected %v but got %v", blockbuffer.ErrShortDump, err)
	}
}

func TestConvertGo(t *testing.T) {
	dump := strings.Repeat("00", blockbuffer.BlockChars/2)

	output := strings.Builder{}
	if err := convert(strings.NewReader(dump), &output, Options{Style: blockbuffer.StyleGo, Name: "Empty"}); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(output.String(), "var Empty = [13][16]byte{\n") {
		t.Errorf("unexpected output: %q", output.String())
	}

	err := convert(strings.NewReader("zz"), &strings.Builder{}, Options{Style: blockbuffer.StyleGo})
	if !errors.Is(err, blockbuffer.ErrInvalidHex) {
		t.Errorf("expected %v but got %v", blockbuffer.ErrInvalidHex, err)
	}
}

func TestRunOutputFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "world1.rs")

	if err := run(strings.NewReader("0001\n"), output, Options{}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}

	expected := "[[  0,0x01]" + strings.Repeat(",\n []", blockbuffer.Rows-1) + "]\n"
	if string(data) != expected {
		t.Errorf("expected %q but got %q", expected, string(data))
	}
}

func TestRunOutputFileErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "world1.rs")
	if err := run(strings.NewReader(""), missing, Options{}); err == nil {
		t.Error("expected error for uncreatable output file")
	}

	output := filepath.Join(t.TempDir(), "world1.go")
	err := run(strings.NewReader("zz"), output, Options{Style: blockbuffer.StyleGo})
	if !errors.Is(err, blockbuffer.ErrInvalidHex) {
		t.Errorf("expected %v but got %v", blockbuffer.ErrInvalidHex, err)
	}
}
