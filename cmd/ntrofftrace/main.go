// Command ntrofftrace drives the interp/format pipeline over a text file
// and prints the line breaks it produces, highlighting hyphenated breaks.
// It is a debug/trace tool, not a typesetter: line width is measured in
// uax11 character-width units, not device units, and `\h'Nu'` motion
// escapes are rendered as a single space rather than a true advance.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/npillmayer/ntroff/format"
	"github.com/npillmayer/ntroff/instack"
	"github.com/npillmayer/ntroff/interp"
	"github.com/npillmayer/ntroff/textfile"
)

// readInput loads a named file (via textfile.Load, materializing it as a
// cord before discarding the cord for its plain string) when an argument
// is given, or reads stdin directly otherwise — the CLI's default mode.
func readInput() (string, error) {
	if flag.NArg() < 1 {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	text, err := textfile.Load(flag.Arg(0), 0, 0, nil)
	if err != nil {
		return "", err
	}
	return text.String(), nil
}

func main() {
	width := flag.Int("w", 0, "line width in character-width units (0 autodetects from the terminal)")
	flag.Parse()

	lineWidth := *width
	if lineWidth <= 0 {
		lineWidth = terminalWidth()
	}

	raw, err := readInput()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ntrofftrace: load:", err)
		os.Exit(1)
	}

	store := format.NewDefaultStore(lineWidth)
	f, err := format.New(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ntrofftrace:", err)
		os.Exit(1)
	}

	hy := color.New(color.FgYellow, color.Bold)
	drain := func() {
		for f.MoreLines() {
			line, _ := f.NextLine()
			printLine(line, hy)
		}
	}

	for _, tok := range tokenize(expand(raw)) {
		switch tok.kind {
		case tokNewline:
			for !f.Newline() {
				drain()
			}
		case tokSpace:
			f.Space()
		case tokWord:
			w := format.NewPlainWord(tok.text, nil)
			for !f.Word(w) {
				drain()
			}
		}
	}
	for !f.Fill(true) {
		drain()
	}
	drain()
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 72
}

// expand drains an interp.Interpreter over the raw file contents. Register/
// string/name tables start empty: ntrofftrace traces line-breaking, not
// full request processing, so escapes that need a predefined register or
// string fall back to each escape's own documented default.
func expand(raw string) string {
	regs := interp.NewMapRegisters()
	strs := interp.NewMapStrings()
	namer := interp.NewMapNamer()
	width := interp.RuneWidthMeasurer(func(r rune) int {
		return format.StringWidth(string(r), nil)
	})
	ip, err := interp.New(instack.New(raw), regs, strs, namer, interp.SimpleEvaluator{}, width)
	if err != nil {
		return raw
	}
	var b strings.Builder
	for {
		c, ok := ip.Next()
		if !ok {
			break
		}
		b.WriteRune(c)
	}
	return b.String()
}

type tokKind int

const (
	tokWord tokKind = iota
	tokSpace
	tokNewline
)

type token struct {
	kind tokKind
	text string
}

// tokenize splits expanded text into words, spaces, and newlines, handing
// each to the Formatter as its own call — the Formatter, not the
// tokenizer, decides how runs of spacing collapse.
func tokenize(text string) []token {
	var toks []token
	runes := []rune(text)
	i, n := 0, len(runes)
	for i < n {
		switch r := runes[i]; {
		case r == '\n':
			toks = append(toks, token{kind: tokNewline})
			i++
		case r == ' ' || r == '\t':
			toks = append(toks, token{kind: tokSpace})
			i++
		default:
			start := i
			for i < n && runes[i] != ' ' && runes[i] != '\t' && runes[i] != '\n' {
				i++
			}
			toks = append(toks, token{kind: tokWord, text: string(runes[start:i])})
		}
	}
	return toks
}

// printLine renders a Line for a terminal. `\h'Nu'` motion escapes collapse
// to one space each, and a trailing `\(hy` hyphen glyph is colorized.
func printLine(line format.Line, hy *color.Color) {
	text := line.Text
	var out strings.Builder
	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], `\(hy`) {
			out.WriteString(hy.Sprint("-"))
			i += len(`\(hy`)
			continue
		}
		if strings.HasPrefix(text[i:], `\h'`) {
			rest := text[i+3:]
			if q := strings.IndexByte(rest, '\''); q >= 0 {
				i += 3 + q + 1
				out.WriteByte(' ')
				continue
			}
		}
		out.WriteByte(text[i])
		i++
	}
	fmt.Println(strings.TrimLeft(out.String(), " "))
}
