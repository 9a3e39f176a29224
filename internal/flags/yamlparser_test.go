package flags

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

var encodeOptions struct {
	Base    string `long:"base"     yaml:"base"`
	Newline bool   `long:"newline"  yaml:"newline"`
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_CommandParse(t *testing.T) {
	file := "testdata/encode.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	data := &encodeOptions
	_, err := parser.AddCommand("encode", "Encode", "Encode options", data)
	require.NoErrorf(t, err, "Could not add encode command")

	err = yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "base58", data.Base, "Invalid reading of string value")
	require.Equal(t, true, data.Newline, "Invalid reading of boolean value")
}

func Test_UnknownCommand(t *testing.T) {
	file := "testdata/unknown_command.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	_, err := parser.AddCommand("encode", "Encode", "Encode options", &encodeOptions)
	require.NoErrorf(t, err, "Could not add encode command")

	err = yamlParser.ParseFile(file)
	require.Errorf(t, err, "Parsing of %v should have failed on the unknown command", file)
}
