package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/anybase/internal/args"
	"github.com/bokysan/anybase/internal/commands/alphabets"
	"github.com/bokysan/anybase/internal/commands/codec"
	"github.com/bokysan/anybase/internal/commands/version"
	abFlags "github.com/bokysan/anybase/internal/flags"
	"github.com/bokysan/anybase/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// AnyBase is the main executable
type AnyBase struct {
	parser *flags.Parser
}

// NewAnyBase will create a new instance of AnyBase and initialize the parser
func NewAnyBase() *AnyBase {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	ab := &AnyBase{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	ab.setupGeneral()
	ab.setupVersion()
	ab.setupEncode()
	ab.setupDecode()
	ab.setupAlphabets()

	return ab
}

// setupGeneral will configure general options
func (ab *AnyBase) setupGeneral() {
	if _, err := ab.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (ab *AnyBase) setupVersion() {
	cmd := &version.Command{}
	_, err := ab.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (ab *AnyBase) setupEncode() {
	cmd := codec.NewEncodeCommand()
	_, err := ab.parser.AddCommand(
		"encode",
		"Encode data",
		"Encode bytes into text over the selected alphabet",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (ab *AnyBase) setupDecode() {
	cmd := codec.NewDecodeCommand()
	_, err := ab.parser.AddCommand(
		"decode",
		"Decode data",
		"Decode text over the selected alphabet back into bytes",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupAlphabets adds the `alphabets` command
func (ab *AnyBase) setupAlphabets() {
	cmd := &alphabets.Command{}
	_, err := ab.parser.AddCommand(
		"alphabets",
		"List encodings",
		"List the well-known encodings and their alphabets",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts anybase and reads the configuration file
func main() {

	anyBase := NewAnyBase()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := abFlags.NewYamlParser(anyBase.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := anyBase.parser.Parse()
	util.MustErrorNilOrExit(err)

}
