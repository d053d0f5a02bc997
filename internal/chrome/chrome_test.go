package chrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wailsapp/wails/v2/pkg/options"
)

type transparentPlatform struct {
	Base
	hidden bool
}

func (p *transparentPlatform) SupportsDockHiding() bool   { return true }
func (p *transparentPlatform) HideDockIcon()              { p.hidden = true }
func (p *transparentPlatform) SupportsTransparency() bool { return true }

var navy = options.RGBA{R: 27, G: 38, B: 54, A: 255}

func TestBaseIsNoop(t *testing.T) {
	var p Base
	assert.False(t, p.SupportsDockHiding())
	assert.False(t, p.SupportsTransparency())
	assert.NotPanics(t, p.HideDockIcon)
}

func TestApplyTransparent(t *testing.T) {
	app := &options.App{}
	Apply(app, &transparentPlatform{}, Style{Transparent: true, Background: navy})

	require.NotNil(t, app.BackgroundColour)
	assert.Equal(t, uint8(0), app.BackgroundColour.A)
	require.NotNil(t, app.Mac)
	assert.True(t, app.Mac.WebviewIsTransparent)
	require.NotNil(t, app.Windows)
	assert.True(t, app.Windows.WebviewIsTransparent)
}

func TestApplyFallsBackToOpaque(t *testing.T) {
	app := &options.App{}
	Apply(app, Base{}, Style{Transparent: true, Background: navy})

	require.NotNil(t, app.BackgroundColour)
	assert.Equal(t, navy, *app.BackgroundColour)
	assert.False(t, app.Mac.WebviewIsTransparent)
}

func TestApplyOpaqueRequested(t *testing.T) {
	app := &options.App{}
	Apply(app, &transparentPlatform{}, Style{Transparent: false, Background: navy})
	assert.Equal(t, navy, *app.BackgroundColour)
	assert.False(t, Transparent(&transparentPlatform{}, Style{}))
}

func TestCurrent(t *testing.T) {
	p := Current()
	require.NotNil(t, p)
	assert.NotEmpty(t, p.Name())
}

func TestHideDock(t *testing.T) {
	p := &transparentPlatform{}
	assert.False(t, HideDock(p, false))
	assert.False(t, p.hidden)

	assert.True(t, HideDock(p, true))
	assert.True(t, p.hidden)

	assert.False(t, HideDock(Base{}, true), "platform without dock hiding")
}
