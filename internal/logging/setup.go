package logging

import (
	"bufio"
	"os"
	"strings"

	"github.com/bokysan/anybase/internal/args"
	"github.com/bokysan/anybase/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the logrus standard logger from the general
// command line options. Every command calls this first thing in Execute.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true" || color == "1",
			DisableColors: color == "no" || color == "false" || color == "0",
			FullTimestamp: args.General.LogFullTimestamp,
		})
	}
	log.SetReportCaller(args.General.LogReportCaller)
	log.Debugf("Verbosity level: %v", VerbosityName())

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		util.MustErrorNilOrExit(errors.WithStack(err))
		log.SetOutput(bufio.NewWriter(f))
	}
}
