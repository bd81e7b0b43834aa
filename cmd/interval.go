package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordanalyser/model"
	"github.com/jsphweid/chordanalyser/pitch"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(intervalCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval <a> <b>",
	Short: "Names the interval between two notes",
	Long: `Names the interval between two note numbers (e.g. 60 64) or two
pitch classes (e.g. C E).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := interval(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), i)
		return nil
	},
}

func interval(a, b string) (pitch.Interval, error) {
	na, errA := strconv.ParseUint(a, 10, 8)
	nb, errB := strconv.ParseUint(b, 10, 8)
	if errA == nil && errB == nil {
		return pitch.Between(model.NoteNumber(na), model.NoteNumber(nb)), nil
	}

	pa, okA := pitch.ParsePitchClass(a)
	pb, okB := pitch.ParsePitchClass(b)
	if !okA || !okB {
		return pitch.Undefined, errors.Errorf("need two note numbers or two pitch classes, got %q and %q", a, b)
	}
	return pitch.BetweenClasses(pa, pb), nil
}
