package midi

import (
	"github.com/jsphweid/chordanalyser/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
)

// Listen feeds every message arriving on input port portIndex to handle,
// in receipt order. A driver must already be registered, e.g. by importing
// gitlab.com/gomidi/midi/v2/drivers/rtmididrv.
func Listen(portIndex int, handle func(model.Event)) (stop func(), err error) {
	in, err := midi.InPort(portIndex)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open midi in port %v", portIndex)
	}
	logrus.WithField("port", in.String()).Info("listening")

	stop, err = midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		e := ToEvent(msg)
		logrus.WithFields(logrus.Fields{
			"msg":    DescribeMessage(msg),
			"status": e.Status,
		}).Trace("midi message")
		handle(e)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can't listen to %v", in.String())
	}
	return stop, nil
}
