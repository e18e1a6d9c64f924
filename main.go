package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/krywicki/ditto/internal/config"
	"github.com/krywicki/ditto/internal/torrent"
)

func main() {
	if err := config.Init("ditto"); err != nil {
		log.WithError(err).Debug("no configuration file loaded")
	}

	strict := flag.Bool("strict", viper.GetBool(config.StrictTrackers), "require tracker URLs to be absolute URLs")
	validate := flag.Bool("validate", viper.GetBool(config.Validate), "warn about structurally suspicious torrents")
	level := flag.String("log-level", viper.GetString(config.LogLevel), "log level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file.torrent>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.WithError(err).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	opts := torrent.Options{StrictTrackers: *strict}
	failed := false
	for _, filename := range flag.Args() {
		if err := show(filename, opts, *validate); err != nil {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func show(filename string, opts torrent.Options, validate bool) error {
	t, err := torrent.OpenWith(filename, opts)
	if err != nil {
		kind, _ := torrent.KindOf(err)
		log.WithFields(log.Fields{"file": filename, "kind": kind}).Error(err)
		fmt.Printf("Error - %s\n", err)
		return err
	}

	if validate {
		if err := t.Validate(); err != nil {
			log.WithField("file", filename).Warnf("torrent validation failed: %s", err)
		}
	}

	fmt.Print(t)
	return nil
}
