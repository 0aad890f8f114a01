package host_test

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ledblocks/blockgame"
	"github.com/plus3/ledblocks/host"
	"github.com/stretchr/testify/assert"
)

func TestButtonForKey(t *testing.T) {
	tests := []struct {
		key    ebiten.Key
		button blockgame.Button
		ok     bool
	}{
		{ebiten.KeyArrowLeft, blockgame.ButtonLeft, true},
		{ebiten.KeyArrowRight, blockgame.ButtonRight, true},
		{ebiten.KeyArrowUp, blockgame.ButtonUp, true},
		{ebiten.KeyArrowDown, blockgame.ButtonDown, true},
		{ebiten.KeySpace, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			b, ok := host.ButtonForKey(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.button, b)
		})
	}
}

func TestTicksPerUpdate(t *testing.T) {
	assert.Equal(t, int32(17), host.TicksPerUpdate(time.Millisecond, 60))
	assert.Equal(t, int32(1), host.TicksPerUpdate(time.Second, 60))
	assert.Equal(t, int32(2), host.TicksPerUpdate(8*time.Millisecond, 60))
	assert.Equal(t, int32(1), host.TicksPerUpdate(0, 60))
	assert.Equal(t, int32(1), host.TicksPerUpdate(time.Millisecond, 0))
}
