package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/transform"

	"github.com/konstantin-budylov/wylie"
	"github.com/konstantin-budylov/wylie/acip"
)

// wylie is a command-line transliterator between Extended Wylie (or
// ACIP) and Tibetan Unicode.
//
//	wylie bla ma            render EWTS arguments as Tibetan
//	wylie -mode t བླ་མ       render Tibetan back as EWTS
//	wylie -input f.txt      convert a file, direction auto-detected
//	wylie -check bsgrubs    validate instead of converting
//
// Without arguments and -input, lines are read from stdin and converted
// one by one.

var (
	inputPath  = flag.String("input", "", "read from `file` instead of stdin")
	outputPath = flag.String("output", "", "write to `file` instead of stdout")
	mode       = flag.String("mode", "auto", "direction: w (to Tibetan), t (to Wylie), auto")
	useACIP    = flag.Bool("acip", false, "treat Latin text as ACIP instead of EWTS")
	keepSpaces = flag.Bool("keep-spaces", false, "keep literal spaces instead of tsheg marks")
	check      = flag.Bool("check", false, "validate EWTS input instead of converting")
)

func main() {
	flag.Parse()

	out := io.Writer(os.Stdout)
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		out = f
	}

	switch {
	case flag.NArg() > 0:
		text := strings.Join(flag.Args(), " ")
		if *check {
			os.Exit(report(out, text))
		}
		fmt.Fprintln(out, convert(text))
	case *inputPath != "":
		f, err := os.Open(*inputPath)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		if err := convertStream(f, out); err != nil {
			fail(err)
		}
	default:
		interactive(os.Stdin, out)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "wylie:", err)
	os.Exit(1)
}

func convert(text string) string {
	dir := wylie.DetectDirection(text)
	switch *mode {
	case "w":
		dir = wylie.EWTSInput
	case "t":
		dir = wylie.TibetanInput
	}
	if dir == wylie.TibetanInput {
		if *useACIP {
			return acip.FromUnicode(text)
		}
		return wylie.UnicodeToWylie(text)
	}
	if *useACIP {
		return acip.ToUnicode(text, !*keepSpaces)
	}
	return wylie.WylieToUnicode(text, !*keepSpaces)
}

// convertStream copies input to output through a streaming transformer
// when the direction is fixed; auto-detection, validation and ACIP need
// the whole text in memory.
func convertStream(in io.Reader, out io.Writer) error {
	if !*useACIP && !*check {
		switch *mode {
		case "w":
			_, err := io.Copy(out, transform.NewReader(in, wylie.ToUnicode(!*keepSpaces)))
			return err
		case "t":
			_, err := io.Copy(out, transform.NewReader(in, wylie.ToWylie()))
			return err
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	text := string(data)
	if *check {
		if code := report(out, text); code != 0 {
			os.Exit(code)
		}
		return nil
	}
	_, err = io.WriteString(out, convert(text))
	return err
}

// report prints a validation summary and returns the exit code.
func report(out io.Writer, text string) int {
	result := wylie.Validate(text)
	fmt.Fprintln(out, result.Summary())
	if !result.Valid {
		return 1
	}
	return 0
}

func interactive(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if *check {
			result := wylie.Validate(line)
			fmt.Fprintln(out, result.Summary())
			continue
		}
		fmt.Fprintln(out, convert(line))
	}
	if err := scanner.Err(); err != nil {
		fail(err)
	}
}
