package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/sirupsen/logrus"

	"github.com/zephyrtronium/rpncalc"
)

func quietLogger() *logrus.Logger {
	lg := logrus.New()
	lg.SetOutput(io.Discard)
	return lg
}

func TestRun(t *testing.T) {
	cases := []struct {
		src  string
		echo bool
		ok   bool
		want string
	}{
		{demo, false, true, demo + " = 110.99998\n"},
		{"10 - 3", true, true, "10 3 - : 10 - 3 = 7.00000\n"},
		{"1/0", false, false, "1/0 = error: division by zero\n"},
		{"2 + foo", true, false, "2 + foo = error: unknown constant \"foo\"\n"},
	}
	for _, c := range cases {
		var b bytes.Buffer
		if ok := run(&b, quietLogger(), c.src, c.echo); ok != c.ok {
			t.Errorf("run(%q) returned %t", c.src, ok)
		}
		if got := b.String(); got != c.want {
			t.Errorf("run(%q): want %q, got %q", c.src, c.want, got)
		}
	}
}

func TestReadLines(t *testing.T) {
	want := []string{"1 + 2", "sqrt(16)"}
	text := "1 + 2\n\n  sqrt(16)  \r\n"

	utf16le := func(s string) []byte {
		b := []byte{0xff, 0xfe}
		for _, u := range utf16.Encode([]rune(s)) {
			b = append(b, byte(u), byte(u>>8))
		}
		return b
	}
	inputs := map[string]io.Reader{
		"utf8":     strings.NewReader(text),
		"utf8-bom": strings.NewReader("\ufeff" + text),
		"utf16le":  bytes.NewReader(utf16le(text)),
	}
	for name, r := range inputs {
		t.Run(name, func(t *testing.T) {
			got, err := readLines(r)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(want) {
				t.Fatalf("want %q, got %q", want, got)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("want %q, got %q", want, got)
					break
				}
			}
		})
	}
}

func TestPrintSymbols(t *testing.T) {
	var b bytes.Buffer
	printSymbols(&b, rpncalc.DefaultTable())
	out := b.String()
	for _, s := range []string{"PI", "sqrt", "prec 4", "prec 1"} {
		if !strings.Contains(out, s) {
			t.Errorf("symbol listing lacks %q:\n%s", s, out)
		}
	}
}
