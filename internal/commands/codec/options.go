package codec

import (
	"io/ioutil"
	"os"

	"github.com/bokysan/anybase/internal/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Options are the knobs shared by the encode and decode commands: which
// encoding to use and where the data comes from and goes to.
type Options struct {
	Base     string `short:"b" long:"base"     env:"BASE"     yaml:"base"     description:"Well-known encoding to use." default:"base62"`
	Alphabet string `short:"a" long:"alphabet" env:"ALPHABET" yaml:"alphabet" description:"Literal alphabet to use instead of a well-known encoding. Symbol order is significant."`
	Input    string `short:"i" long:"input"    env:"INPUT"    yaml:"input"    description:"Input file. If not set, defaults to stdin." default:"-"`
	Output   string `short:"o" long:"output"   env:"OUTPUT"   yaml:"output"   description:"Output file. If not set, defaults to stdout." default:"-"`
	Newline  bool   `short:"n" long:"newline"  env:"NEWLINE"  yaml:"newline"  description:"Terminate the output with a newline."`
}

// Encoding resolves the encoding to use. A literal alphabet, when given,
// takes precedence over the well-known encoding name.
func (o *Options) Encoding() (*enc.Encoding, error) {
	if o.Alphabet != "" {
		encoding, err := enc.NewEncoding(o.Alphabet)
		if err != nil {
			return nil, errors.Wrapf(err, "could not build an encoding from alphabet %q", o.Alphabet)
		}
		return encoding, nil
	}
	return enc.Lookup(o.Base)
}

// ReadInput slurps the whole input. The codec works on complete buffers,
// there is no streaming mode.
func (o *Options) ReadInput() ([]byte, error) {
	if o.Input == "" || o.Input == "-" {
		data, err := ioutil.ReadAll(os.Stdin)
		return data, errors.WithStack(err)
	}
	data, err := ioutil.ReadFile(o.Input)
	return data, errors.Wrapf(err, "could not read %v", o.Input)
}

// WriteOutput writes data to the configured output, appending a newline
// when requested.
func (o *Options) WriteOutput(data []byte) error {
	if o.Newline {
		data = append(data, '\n')
	}
	if o.Output == "" || o.Output == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return errors.WithStack(err)
		}
		return nil
	}
	if err := ioutil.WriteFile(o.Output, data, 0644); err != nil {
		return errors.Wrapf(err, "could not write %v", o.Output)
	}
	log.Debugf("Wrote %v bytes to %v", len(data), o.Output)
	return nil
}
