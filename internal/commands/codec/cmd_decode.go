package codec

import (
	"strings"

	"github.com/bokysan/anybase/internal/logging"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
)

// DecodeCommand reads a textual representation and writes back the bytes it
// was encoded from.
type DecodeCommand struct {
	Options `yaml:",inline"`
}

func NewDecodeCommand() *DecodeCommand {
	return &DecodeCommand{}
}

func (c *DecodeCommand) String() string {
	return "Decode data"
}

func (c *DecodeCommand) Execute(args []string) error {
	logging.SetupLogging()
	log.Tracef("Decode options: %v", spew.Sdump(c.Options))

	encoding, err := c.Encoding()
	if err != nil {
		return err
	}

	data, err := c.ReadInput()
	if err != nil {
		return err
	}

	// A trailing line break is an artifact of the input channel, not part
	// of the encoded text.
	source := strings.TrimRight(string(data), "\r\n")

	decoded, err := encoding.Decode(source)
	if err != nil {
		return err
	}
	log.Debugf("Decoded %v %v characters into %v bytes", len(source), encoding, len(decoded))

	return c.WriteOutput(decoded)
}
