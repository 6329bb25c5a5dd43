package logfields

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrs(t *testing.T) {
	assert.Equal(t, KeyMonth, Month(3).Key)
	assert.Equal(t, int64(3), Month(3).Value.Int64())
	assert.Equal(t, "Fajr Prayer", Task("Fajr Prayer").Value.String())
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
	assert.Equal(t, "", Error(nil).Value.String())
}
