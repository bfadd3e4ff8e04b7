package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReadingStatus(t *testing.T) {
	for _, valid := range []string{"WANT_TO_READ", "TO_READ", "READING", "READ"} {
		status, err := ParseReadingStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, ReadingStatus(valid), status)
	}

	for _, invalid := range []string{"", "reading", "FINISHED", "WANT-TO-READ"} {
		_, err := ParseReadingStatus(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}
