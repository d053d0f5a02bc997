package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOptions() Options {
	return Options{
		Tooltip: "Fleeets Companion",
		Items: []MenuItem{
			{ID: "show", Label: "Show (⌥ Space)"},
			{ID: "quit", Label: "Quit"},
		},
		OnClick:    func() {},
		OnMenuItem: func(string) {},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validOptions().Validate())

	opts := validOptions()
	opts.Items = nil
	assert.ErrorIs(t, opts.Validate(), ErrNoMenuItems)

	opts = validOptions()
	opts.OnMenuItem = nil
	assert.ErrorIs(t, opts.Validate(), ErrNoMenuHandler)

	opts = validOptions()
	opts.Items = append(opts.Items, MenuItem{ID: " ", Label: "blank"})
	assert.ErrorContains(t, opts.Validate(), "empty id")

	opts = validOptions()
	opts.Items = append(opts.Items, MenuItem{ID: "quit", Label: "Quit again"})
	assert.ErrorContains(t, opts.Validate(), "duplicate tray menu item ids: quit")
}

func TestValidateAllowsMissingClickHandler(t *testing.T) {
	opts := validOptions()
	opts.OnClick = nil
	assert.NoError(t, opts.Validate())
}

func TestStartRejectsInvalidOptions(t *testing.T) {
	ctrl, err := Start(Options{})
	assert.Nil(t, ctrl)
	assert.ErrorIs(t, err, ErrNoMenuItems)
}

func TestLifecycleStopBeforeReadyQuitsOnReady(t *testing.T) {
	quits := 0
	l := newLifecycle(func() { quits++ })

	l.stop()
	assert.Equal(t, 0, quits, "native loop not running yet")
	assert.True(t, l.isStopped())

	assert.False(t, l.markReady())
	assert.Equal(t, 1, quits)
}

func TestLifecycleStopAfterReady(t *testing.T) {
	quits := 0
	l := newLifecycle(func() { quits++ })

	require.True(t, l.markReady())
	assert.False(t, l.isStopped())

	l.stop()
	l.stop()
	assert.Equal(t, 1, quits)
}

func TestLifecycleNilQuit(t *testing.T) {
	l := newLifecycle(nil)
	require.True(t, l.markReady())
	assert.NotPanics(t, l.stop)
}
