package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"camelcards/internal/config"
	"camelcards/pkg/camelcards"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is the camelcards version
var Version = "v0.0.0-dev"

var rootCmd = &cobra.Command{
	Use:          "camelcards [input-file]",
	Short:        "Rank Camel Cards hands and print the total winnings",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := config.Instance().InputFile
		if len(args) == 1 {
			inputFile = args[0]
		}

		total, err := run(inputFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), total)
		return err
	},
}

func main() {
	setupLogger()

	rootCmd.Version = Version
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("could not calculate winnings")
	}
}

// run reads the hands from inputFile, or stdin when it is "-", and returns the total winnings
func run(inputFile string, stdin io.Reader) (uint64, error) {
	r := stdin
	if inputFile != "-" {
		file, err := os.Open(inputFile)
		if err != nil {
			return 0, err
		}
		defer file.Close()

		r = file
	}

	hands, err := camelcards.ParseHands(r)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"input": inputFile,
		"hands": len(hands),
	}).Info("parsed hands")

	ranked, err := camelcards.Rank(hands)
	if err != nil {
		return 0, err
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		for _, rh := range ranked {
			logrus.WithFields(logrus.Fields{
				"rank":     rh.Rank,
				"hand":     rh.Label,
				"category": rh.Category.String(),
				"bid":      rh.Bid,
				"winnings": rh.Winnings,
			}).Debug("ranked hand")
		}
	}

	return camelcards.SumWinnings(ranked)
}

func setupLogger() {
	logrus.SetOutput(os.Stderr)

	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
