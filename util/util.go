package util

import (
	"os"

	"codeberg.org/iklabib/runlog/model"
	"github.com/sirupsen/logrus"
)

var exit = os.Exit

// Bail logs err and terminates with the supervisor failure status, which
// keeps it apart from anything the child could have returned.
func Bail(log logrus.FieldLogger, err error) {
	if err != nil {
		log.WithError(err).Error("runlog failed")
		exit(model.SupervisorFailureStatus)
	}
}
