package flag

import (
	"github.com/spf13/pflag"
	"github.com/thirukguru/aws-reporter/model"
)

type service struct {
	fs   *pflag.FlagSet
	args []string
}

// Service is the interface for the CLI flag service.
type Service interface {
	GetParsedFlags() (model.Flags, error)
	Usage() string
}
