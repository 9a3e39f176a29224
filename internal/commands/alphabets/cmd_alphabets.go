package alphabets

import (
	"github.com/bokysan/anybase/internal/enc"
	"github.com/bokysan/anybase/internal/logging"
	"github.com/k0kubun/go-ansi"
)

const (
	Reset    = "\x1b[0m"
	DarkGray = "\x1b[90m"
	White    = "\x1b[97m"
)

// Command lists the well-known encodings together with their alphabets.
type Command struct {
}

func (c *Command) String() string {
	return "List well-known encodings"
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	for _, name := range enc.Names() {
		encoding, err := enc.Lookup(name)
		if err != nil {
			return err
		}
		ansi.Printf(White+"%-8s"+DarkGray+" radix %-3d "+Reset+"%s\n", name, encoding.Radix(), encoding.Alphabet())
	}
	return nil
}
