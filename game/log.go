package game

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
)

// silent is used when New is given no logger.
var silent log.Interface = &log.Logger{Handler: discard.New(), Level: log.FatalLevel}
