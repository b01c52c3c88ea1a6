package autostart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandQuotesPath(t *testing.T) {
	assert.Equal(t, `"C:\Program Files\LetsZoom\letszoom.exe"`, Command(`C:\Program Files\LetsZoom\letszoom.exe`))
}
