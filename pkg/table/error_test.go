package table

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUserError(t *testing.T) {
	a := assert.New(t)

	a.True(IsUserError(ErrEmptyRoster))
	a.True(IsUserError(fmt.Errorf("could not seat players: %w", ErrEmptyRoster)))
	a.False(IsUserError(errors.New("database is down")))
	a.False(IsUserError(nil))
}
