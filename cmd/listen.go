package cmd

import (
	"os"
	"os/signal"
	"time"

	"github.com/jsphweid/chordanalyser/chord"
	"github.com/jsphweid/chordanalyser/constants"
	"github.com/jsphweid/chordanalyser/dispatch"
	"github.com/jsphweid/chordanalyser/midi"
	"github.com/jsphweid/chordanalyser/model"
	"github.com/jsphweid/chordanalyser/tracker"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var (
	inPort   int
	debounce time.Duration
)

func init() {
	for _, c := range []*cobra.Command{listenCmd, serveCmd} {
		c.Flags().IntVar(&inPort, "port", constants.GetInPort(), "index of the midi input port, -1 for none")
		c.Flags().DurationVar(&debounce, "debounce", constants.GetDebounce(), "quiet time before a chord is reported")
	}
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Prints chords played on a midi input",
	Long:  `Prints chords played on a midi input until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDispatcher()
		defer d.Close()

		stop, err := listen(d)
		if err != nil {
			return err
		}
		defer stop()

		waitForInterrupt()
		return nil
	},
}

func logChord(notes model.NoteSet) {
	logrus.WithField("chord", chord.Describe(notes.Sorted())).Info("notes changed")
}

func newDispatcher() *dispatch.Dispatcher {
	return dispatch.New(tracker.New(), debounce, logChord)
}

// listen does nothing when --port is negative.
func listen(d *dispatch.Dispatcher) (stop func(), err error) {
	if inPort < 0 {
		return func() {}, nil
	}
	stop, err = midi.Listen(inPort, d.Dispatch)
	if err != nil {
		gomidi.CloseDriver()
		return nil, err
	}
	return func() {
		stop()
		gomidi.CloseDriver()
	}, nil
}

func waitForInterrupt() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
