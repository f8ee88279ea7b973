package plotlog

import (
	"github.com/rockbears/log"
)

const (
	// If you add a field constant, don't forget to add it in the log.RegisterField below
	Equation = log.Field("equation")
	Command  = log.Field("command")
	Size     = log.Field("size")
)

func init() {
	log.RegisterField(
		Equation,
		Command,
		Size,
	)
}
