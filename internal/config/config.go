// Package config reads the command line.
package config

import (
	"flag"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Screen and window defaults
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "The Fat Caticorn"
)

type Config struct {
	Verbosity int
}

// counter is a flag that counts how often it was given.
type counter int

func (c *counter) String() string   { return strconv.Itoa(int(*c)) }
func (c *counter) Set(string) error { *c++; return nil }
func (c *counter) IsBoolFlag() bool { return true }

// Parse reads args (without the program name). Usage goes to out. Asking
// for help returns flag.ErrHelp unwrapped.
func Parse(args []string, out io.Writer) (Config, error) {
	var v counter
	fs := flag.NewFlagSet("caticorn", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Var(&v, "v", "turn on debug logs (repeat for more, -vv works too)")
	fs.Var(&v, "verbose", "same as -v")

	if err := fs.Parse(expandShort(args)); err != nil {
		if err == flag.ErrHelp {
			return Config{}, err
		}
		return Config{}, errors.Wrap(err, "parse flags")
	}
	if fs.NArg() > 0 {
		return Config{}, errors.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return Config{Verbosity: int(v)}, nil
}

// expandShort turns -vvv into -v -v -v, which the flag package can read.
func expandShort(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a == "--" {
			out = append(out, a)
			continue
		}
		name := strings.TrimLeft(a, "-")
		if strings.HasPrefix(a, "-") && len(name) > 1 && strings.Trim(name, "v") == "" {
			for range name {
				out = append(out, "-v")
			}
			continue
		}
		out = append(out, a)
	}
	return out
}
