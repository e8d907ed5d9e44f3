package match

import "fmt"

// target limits
const (
	MinTarget = 1
	MaxTarget = 999
)

// OptionsError is returned when the match options are invalid
type OptionsError string

func (o OptionsError) Error() string {
	return string(o)
}

// SafeForUser returns true, the message can be returned in a response
func (o OptionsError) SafeForUser() bool {
	return true
}

// Options configures when a match ends
type Options struct {
	// TargetEnabled ends the match once a single player leads with at least Target points
	TargetEnabled bool `json:"targetEnabled"`
	Target        int  `json:"target"`
}

// DefaultOptions returns the default options for a match
func DefaultOptions() Options {
	return Options{
		TargetEnabled: true,
		Target:        10,
	}
}

// Validate returns an OptionsError if the options are not valid
func (o Options) Validate() error {
	if o.Target < MinTarget || o.Target > MaxTarget {
		return OptionsError(fmt.Sprintf("target must be between %d and %d", MinTarget, MaxTarget))
	}

	return nil
}
