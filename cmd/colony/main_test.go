package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colony/internal/app"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrintConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printConfig(&buf, app.NewConfig()))
	assert.Contains(t, buf.String(), "size: 10")
}

func TestPrintConfigWriteError(t *testing.T) {
	err := printConfig(failingWriter{}, app.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write config")
	assert.Contains(t, err.Error(), "disk full")
}
