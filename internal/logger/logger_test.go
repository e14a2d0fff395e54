package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)
	l.Infof("wrote %d bytes", 12)
	l.Errorf("failed: %s", "boom")
	assert.Equal(t, "[INFO] wrote 12 bytes\n[ERROR] failed: boom\n", buf.String())
}
