package main

import (
	"errors"
	"fmt"
	"testing"

	"PriceReport/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	dataErr := fmt.Errorf("load: %w", &model.DataError{Op: "load prices", Err: errors.New("bad")})
	ioErr := fmt.Errorf("write: %w", &model.IOError{Op: "rename report", Path: "x", Err: errors.New("denied")})

	assert.Equal(t, exitDataError, exitCode(dataErr))
	assert.Equal(t, exitIOError, exitCode(ioErr))
	assert.NotZero(t, exitCode(errors.New("unclassified")))
}
