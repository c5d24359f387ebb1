package log

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

func init() {
	Info = log.New(os.Stdout, color.GreenString("[INFO] "), flags)
	Warn = log.New(os.Stdout, color.YellowString("[WARN] "), flags)
	Error = log.New(os.Stderr, color.RedString("[ERROR] "), flags)
}

// SetOutput points every logger at w. Passing io.Discard silences them.
func SetOutput(w io.Writer) {
	Info.SetOutput(w)
	Warn.SetOutput(w)
	Error.SetOutput(w)
}
