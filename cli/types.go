package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FlagType for cli flag.
type FlagType string

// Flag types.
const (
	FlagString FlagType = "string"
	FlagBool   FlagType = "bool"
	FlagSlice  FlagType = "slice"
	FlagArray  FlagType = "array"
)

// Flag represents a command flag.
type Flag struct {
	Type      FlagType
	Name      string
	ShortHand string
	Usage     string
	Default   string
	IsValid   func(string) bool
}

// Values represents commands flags and args values accessible with their name.
type Values map[string][]string

// GetString returns a string value.
func (v Values) GetString(s string) string {
	r := v[s]
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// GetStringSlice returns the values of a slice flag.
func (v Values) GetStringSlice(s string) []string {
	var res []string
	for _, r := range v[s] {
		if r == "" {
			continue
		}
		res = append(res, strings.Split(r, "||")...)
	}
	return res
}

// GetInt returns a int value.
func (v Values) GetInt(s string) (int, error) {
	r := v.GetString(s)
	if r == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(r)
	if err != nil {
		return 0, NewError("%s invalid: not a integer", s)
	}
	return i, nil
}

// GetBool returns a bool value.
func (v Values) GetBool(s string) bool {
	return strings.ToLower(v.GetString(s)) == "true"
}

// Arg represent a command argument.
type Arg struct {
	Name    string
	IsValid func(string) bool
}

// Command represents the way to instantiate a cobra.Command.
type Command struct {
	Name         string
	Args         []Arg
	OptionalArgs []Arg
	Short        string
	Long         string
	Example      string
	Flags        []Flag
	Aliases      []string
	Hidden       bool
}

// CommandModifier is a function type to extend a command.
type CommandModifier func(*Command, interface{})

// CommandWithoutExtraFlags to avoid add extra flags.
func CommandWithoutExtraFlags(c *Command, run interface{}) {}

// CommandWithExtraFlags to add common flags like "--format".
func CommandWithExtraFlags(c *Command, run interface{}) {
	var extraFlags []Flag
	switch run.(type) {
	case RunGetFunc:
		extraFlags = []Flag{
			{
				Name:    "format",
				Default: "plain",
				Usage:   "Output format: plain|json|yaml",
			},
			{
				Name:  "quiet",
				Usage: "Only display object's key",
				Type:  FlagBool,
			},
		}
	case RunListFunc:
		extraFlags = []Flag{
			{
				Name:  "filter",
				Usage: "Filter output based on conditions provided",
			},
			{
				Name:    "format",
				Default: "table",
				Usage:   "Output format: table|json|yaml",
			},
			{
				Name:      "quiet",
				ShortHand: "q",
				Usage:     "Only display object's key",
				Type:      FlagBool,
			},
			{
				Name:  "fields",
				Type:  FlagSlice,
				Usage: "Only display the given fields, e.g. --fields name,formula",
			},
		}
	}
	c.Flags = append(c.Flags, extraFlags...)
}

// ErrWrongUsage is a common error.
var ErrWrongUsage = &Error{1, fmt.Errorf("Wrong usage")}

// Error implements error.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewError returns new error for given message and args.
func NewError(format string, args ...interface{}) error {
	return &Error{Code: 50, Err: errors.Errorf(format, args...)}
}

// WrapError constructs a stack of errors, adding context to the preceding error.
func WrapError(err error, format string, args ...interface{}) error {
	return &Error{Code: 50, Err: errors.Wrapf(err, format, args...)}
}

// RunFunc is a run function for a command.
type RunFunc func(Values) error

// RunGetFunc is a run function for a command that returns an object.
type RunGetFunc func(Values) (interface{}, error)

// RunListFunc is a run function for a command that returns a list of objects.
type RunListFunc func(Values) (ListResult, error)

// ListResult is the result type for command function that returns list.
type ListResult []interface{}

// AsListResult return a ListResult from given slice.
func AsListResult(i interface{}) ListResult {
	s := reflect.ValueOf(i)
	if s.Kind() != reflect.Slice {
		panic("AsListResult() given a non-slice type")
	}

	res := ListResult{}
	for i := 0; i < s.Len(); i++ {
		res = append(res, s.Index(i).Interface())
	}
	return res
}
