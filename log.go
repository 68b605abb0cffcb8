package main

import (
	"crypto/aes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

var style *termenv.Output

func init() {
	style = termenv.NewOutput(os.Stdout)
}

func setupOutput(w io.Writer, noColor bool) {
	if noColor {
		style = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
		return
	}
	style = termenv.NewOutput(w)
}

func printErr(err string) {
	fmt.Fprintln(style, style.String("Error: "+err).Foreground(termenv.ANSIBrightRed))
}

func fatal(err string) {
	printErr(err)
	os.Exit(1)
}

func warn(msg string) {
	fmt.Fprintln(style, style.String("warning: "+msg).Foreground(termenv.ANSIYellow))
}

func applyMeta(s string) termenv.Style {
	return style.String(s).Italic()
}

func applyValue(s string) termenv.Style {
	return style.String(s).Bold().Foreground(termenv.ANSIBrightGreen)
}

type hexStyleFlags int

const (
	hexStyleDecrypted       hexStyleFlags = 1
	hexStyleContainsPadding hexStyleFlags = 1 << 1
)

var paddingColor = termenv.ANSIYellow

// hexStyle renders b as space separated hex. With hexStyleContainsPadding the
// trailing bytes named by the final PKCS7 length byte are highlighted.
func hexStyle(b []byte, flags hexStyleFlags) string {
	paddingFrom := len(b)
	if flags&hexStyleContainsPadding == hexStyleContainsPadding && len(b) > 0 {
		padLen := int(b[len(b)-1])
		if padLen >= 1 && padLen <= aes.BlockSize && padLen <= len(b) {
			paddingFrom = len(b) - padLen
		}
	}

	bytesString := ""
	for i, bt := range b {
		btAsString := hex.EncodeToString([]byte{bt})
		if i != 0 {
			bytesString += " "
		}
		if i >= paddingFrom {
			bytesString += style.String(btAsString).Foreground(paddingColor).String()
		} else {
			bytesString += style.String(btAsString).Foreground(termenv.ANSIGreen).String()
		}
	}

	resp := fmt.Sprintf("[%s]", bytesString)

	if flags&hexStyleDecrypted == hexStyleDecrypted {
		resp += style.String(" Decrypted").Foreground(termenv.ANSIBrightBlack).String()
	}

	return resp
}
