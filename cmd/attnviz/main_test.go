package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/expki/go-attention/logger"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Cleanup(func() { logger.Set(nil) })

	var stdout, stderr bytes.Buffer
	code := run([]string{"-token", "4", "-temperature", "2"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Softmax")
	assert.Contains(t, stdout.String(), "Attention heatmap")
	assert.Contains(t, stdout.String(), `Self attention of "Himmel"`)
}

func TestRunTokenOutOfRange(t *testing.T) {
	testCases := []struct {
		name  string
		token string
	}{
		{name: "too large", token: "6"},
		{name: "negative", token: "-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run([]string{"-token", tc.token}, &stdout, &stderr)
			assert.Equal(t, 2, code)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), "out of range")
		})
	}
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-config", filepath.Join(t.TempDir(), "missing.json")}, &stdout, &stderr))
	assert.Empty(t, stdout.String())

	assert.Equal(t, 2, run([]string{"-unknown"}, &stdout, &stderr))
}

func TestRunSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-sample", path}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), path)
}
