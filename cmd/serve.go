package cmd

import (
	"net/http"

	"github.com/jsphweid/chordanalyser/constants"
	"github.com/jsphweid/chordanalyser/server"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", constants.GetAddr(), "address to serve the http api on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the current notes over http",
	Long: `Serves the current notes over http. Events come from the midi input
given by --port and from POST /events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDispatcher()
		defer d.Close()

		stop, err := listen(d)
		if err != nil {
			return err
		}
		defer stop()

		s := server.New(d)
		logrus.WithFields(logrus.Fields{"addr": addr, "session": s.Session()}).Info("serving")
		return errors.Wrap(http.ListenAndServe(addr, s.Handler()), "server stopped")
	},
}
