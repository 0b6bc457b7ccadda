package redact

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringRedactsAPIKeys(t *testing.T) {
	t.Parallel()

	out := String("request failed: api_key=AIzaSyD1234567890abcdef rejected")
	assert.NotContains(t, out, "AIzaSyD1234567890abcdef")
	assert.Contains(t, out, RedactedKeyPlaceholder)
}

func TestStringRedactsFilesystemPaths(t *testing.T) {
	t.Parallel()

	out := String("open /var/lib/provet/uploads/consultation.json: permission denied")
	assert.NotContains(t, out, "/var/lib/provet/uploads")
	assert.Contains(t, out, RedactedPathPlaceholder)
}

func TestStringRedactsHosts(t *testing.T) {
	t.Parallel()

	out := String("dial tcp generativelanguage.googleapis.com:443 refused")
	assert.NotContains(t, out, "googleapis.com")
	assert.Contains(t, out, RedactedHostPlaceholder)
}

func TestStringLeavesPlainTextAlone(t *testing.T) {
	t.Parallel()

	in := "failed to generate discharge note"
	assert.Equal(t, in, String(in))
}

func TestStringEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", String(""))
}

func TestErrorRedacts(t *testing.T) {
	t.Parallel()

	err := errors.New("secret=abcdef123456789 leaked")
	out := Error(err)
	assert.False(t, strings.Contains(out, "abcdef123456789"))
}

func TestErrorNil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Error(nil))
}
