package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShowSpinnerRendersAndClears(t *testing.T) {
	var buf bytes.Buffer
	stop := ShowSpinner(&buf, "syncing")
	time.Sleep(4 * spinnerInterval)
	stop()
	stop()

	out := buf.String()
	assert.Contains(t, out, "syncing")
	assert.True(t, strings.HasSuffix(out, "\r\033[K"), "spinner must clear the line on stop")
}

func TestShowSpinnerStopBeforeFirstFrame(t *testing.T) {
	var buf bytes.Buffer
	stop := ShowSpinner(&buf, "signing in")
	stop()

	assert.Equal(t, "\r\033[K", buf.String())
}
