package flags

import (
	"fmt"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"

	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// YamlParser feeds a YAML configuration file into a flags.Parser. Each top
// level key of the file names a registered command and its value is decoded
// straight into that command's option struct, so the same struct tags drive
// both the command line and the configuration file.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a YamlParser bound to the given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile reads and applies the given YAML file. Relative file references
// inside the document resolve against the file's own directory.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	return y.parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// parse decodes YAML documents from the reader one after another, so a
// single file may carry several documents separated by triple dashes.
func (y *YamlParser) parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.applyDocument(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// applyDocument matches every top-level key to a registered command and
// unmarshals the key's value into the command's backing option struct.
func (y *YamlParser) applyDocument(obj map[string]interface{}) error {
	for name, val := range obj {
		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command '%s'", name),
			})
		}

		// The flags library gives no direct access to the struct backing a
		// group, so dig it out of the unexported "data" field.
		group := reflect.Indirect(reflect.ValueOf(command.Group))
		dataField := group.FieldByName("data")
		dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, dataField.Elem().Interface()); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
