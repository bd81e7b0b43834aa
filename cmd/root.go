package cmd

import (
	"github.com/jsphweid/chordanalyser/constants"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "chordanalyser",
	Short: "Tracks the notes being played and the intervals between them",
	Long: `Tracks the notes currently sounding on a MIDI input (or in a MIDI file)
and names their pitch classes and the intervals between them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrap(err, "bad --log-level")
		}
		logrus.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "trace, debug, info, warn or error")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
