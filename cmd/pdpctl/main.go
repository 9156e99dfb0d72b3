package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	name    = "pdpctl"
	version = "v0.0.1-default"
	commit  = ""

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}
)

func main() {
	initLogging(name, version)

	if err := newApp().Run(os.Args); err != nil {
		fatalErr(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:            name,
		Version:         fmt.Sprintf("%s - (commit: %s)", version, commit),
		Compiled:        time.Now(),
		Usage:           "Partial dependence of reference models over synthetic data",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			debugFlag,
		},
		Commands: []*cli.Command{
			computeCmd,
			versionCmd,
		},
		Before: func(c *cli.Context) error {
			if c.Bool(debugFlag.Name) {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}
}

func fatalErr(err error) {
	if err != nil {
		log.Fatalf("fatal error: %v", err)
	}
}

func initLogging(name, version string) {
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
	log.SetReportCaller(false)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})
	log.WithFields(log.Fields{"app": name, "version": version}).Debug("logging initialized")
}
