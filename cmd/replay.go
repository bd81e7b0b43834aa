package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordanalyser/chord"
	"github.com/jsphweid/chordanalyser/midi"
	"github.com/jsphweid/chordanalyser/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(replayCmd)
}

var replayCmd = &cobra.Command{
	Use:   "replay <file-or-dir> [max]",
	Short: "Prints the chords in midi files",
	Long:  `Replays every .mid file under the path through the tracker and prints each chord.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 2 {
			arg, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			maxNum = arg
		}
		return replay(cmd, args[0], maxNum)
	},
}

func replay(cmd *cobra.Command, path string, maxNum int) error {
	paths, err := util.GatherAllMidiPaths(path, maxNum)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, p := range paths {
		logrus.Infof("Processing %v of %v midi files", i+1, len(paths))
		parsed, err := midi.ReadMidiFile(p)
		if err != nil {
			logrus.WithError(err).Warnf("Skipping %v", p)
			continue
		}

		fmt.Fprintf(out, "%v\n", p)
		for _, c := range chord.GetChords(parsed) {
			fmt.Fprintf(out, "%10.3fs  %v\n", float64(c.Offset)/1000, chord.Describe(c.Notes))
		}
	}
	return nil
}
