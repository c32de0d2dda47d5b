// Command decimalctl is a small ambient demo of the decimal codec: it is
// not part of the library's public interface, only a way to exercise it
// from a shell.
package main

import (
	"bufio"
	"fmt"
	"os"

	decimal "github.com/trippwill/go-decimal"
	"github.com/trippwill/go-decimal/localetext"
	"golang.org/x/text/language"
)

func main() {
	if len(os.Args) > 1 {
		for _, arg := range os.Args[1:] {
			encodeAndPrint(arg)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		encodeAndPrint(scanner.Text())
	}
}

func encodeAndPrint(s string) {
	bs, err := decimal.EncodeString(s, decimal.Options{})
	if err != nil {
		fmt.Printf("%-24s  error: %v\n", s, err)
		return
	}

	locale, localeErr := localetext.Format(bs, language.AmericanEnglish)
	if localeErr != nil {
		locale = "-"
	}

	fmt.Printf("%-24s  -> %-24s  %-24s  %s\n", s, decimal.ToString(bs), locale, decimal.Debug(bs))
}
