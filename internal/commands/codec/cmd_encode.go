package codec

import (
	"github.com/bokysan/anybase/internal/logging"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
)

// EncodeCommand reads bytes and writes their textual representation.
type EncodeCommand struct {
	Options `yaml:",inline"`
}

func NewEncodeCommand() *EncodeCommand {
	return &EncodeCommand{}
}

func (c *EncodeCommand) String() string {
	return "Encode data"
}

func (c *EncodeCommand) Execute(args []string) error {
	logging.SetupLogging()
	log.Tracef("Encode options: %v", spew.Sdump(c.Options))

	encoding, err := c.Encoding()
	if err != nil {
		return err
	}

	data, err := c.ReadInput()
	if err != nil {
		return err
	}

	encoded := encoding.Encode(data)
	log.Debugf("Encoded %v bytes into %v %v characters", len(data), len(encoded), encoding)

	return c.WriteOutput([]byte(encoded))
}
