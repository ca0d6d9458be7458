package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	formatcards "github.com/drpriver/format-cards-xml"
	"github.com/drpriver/format-cards-xml/log"
)

type appConfig struct {
	target      string
	output      string
	toClipboard bool
	debug       bool
}

func parseFlags() appConfig {
	var (
		config      appConfig
		showVersion bool
	)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s INPUT\n\nFlags:\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	flag.StringVar(&config.output, "o", "", "write the listing to this file (cannot be used with \"-clipboard\")")
	flag.BoolVar(&config.toClipboard, "clipboard", false, "copy the listing to the system clipboard (cannot be used with \"-o\")")
	if len(version) > 0 {
		flag.BoolVar(&showVersion, "version", false, "display the version information")
	}
	flag.BoolVar(&config.debug, "debug", false, "enable debug logging")

	flag.Parse()

	if showVersion {
		displayBuildInformation()
		os.Exit(0)
	}

	if flag.NArg() == 0 || flag.NArg() > 1 {
		fmt.Fprint(os.Stderr, "An input file is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if len(config.output) > 0 && config.toClipboard {
		fmt.Fprint(os.Stderr, "\"-o\" and \"-clipboard\" cannot be used at the same time\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if len(config.output) == 0 && !config.toClipboard {
		fmt.Fprint(os.Stderr, "Choose a destination with \"-o\" or \"-clipboard\"\n\n")
		flag.Usage()
		os.Exit(1)
	}

	config.target = flag.Args()[0]

	return config
}

func main() {
	config := parseFlags()

	var zapConf zap.Config

	if config.debug {
		zapConf = zap.NewDevelopmentConfig()
		zapConf.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	} else {
		zapConf = zap.NewProductionConfig()
		zapConf.Encoding = "console"
		zapConf.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		zapConf.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
		zapConf.EncoderConfig.EncodeCaller = nil
	}

	// Skip 1 caller, since all log calls go through format-cards-xml/log
	logger, err := zapConf.Build(zap.AddCallerSkip(1))
	if err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		os.Exit(1)
	}
	defer func() {
		// Don't check for errors since logger.Sync() can sometimes fail
		// even if the logs were properly displayed
		// See https://github.com/uber-go/zap/issues/328
		_ = logger.Sync()
	}()

	log.SetLogger(logger.Sugar())

	read := formatcards.FileReader(config.target)
	if config.target == "-" {
		log.Debug("Reading from stdin")
		read = formatcards.StdinReader()
	}

	write := formatcards.FileWriter(config.output)
	if config.toClipboard {
		write = formatcards.ClipboardWriter()
	}

	count, err := formatcards.Convert(read, write)
	if err != nil {
		log.Fatal(err)
	}

	if config.toClipboard {
		log.Infof("Copied %d card(s) to the clipboard", count)
	} else {
		log.Infof("Converted %d card(s) to %s", count, config.output)
	}
}
