package version

import (
	"os"

	"github.com/bokysan/anybase/internal/version"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the application version and build metadata.
type Command struct {
}

func (i *Command) String() string {
	return "Version details"
}

func (i *Command) Execute(args []string) error {
	PrintVersion()
	ansi.Printf(DarkGray+" Git tag     "+White+"%+v"+Reset+"\n", version.GitTag)
	ansi.Printf(DarkGray+" Git branch  "+White+"%+v"+Reset+"\n", version.GitBranch)
	ansi.Printf(DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	ansi.Printf(DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion)
	os.Exit(0)
	return nil
}

func PrintVersion() {
	ansi.Printf(Bold+BackgroundBlue+
		LightGray+" ANYBASE "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+DarkGray+"/"+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitBranch, version.GitCommit)
}
