package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"letszoom/internal/config"
)

type recorder struct{ shown []string }

func (r *recorder) Show(title, message string) error {
	r.shown = append(r.shown, title+": "+message)
	return nil
}

func TestNewPicksBalloon(t *testing.T) {
	r := &recorder{}
	n := New(config.NotifyBalloon, r)
	assert.Same(t, r, n)

	assert.NoError(t, n.Show("LetsZoom", "hello"))
	assert.Equal(t, []string{"LetsZoom: hello"}, r.shown)
}

func TestNewWithoutBalloonIsNop(t *testing.T) {
	n := New(config.NotifyBalloon, nil)
	assert.IsType(t, Nop{}, n)
	assert.NoError(t, n.Show("a", "b"))
}

func TestNewToastIsNotBalloon(t *testing.T) {
	r := &recorder{}
	n := New(config.NotifyToast, r)
	assert.NotEqual(t, Notifier(r), n)
}
