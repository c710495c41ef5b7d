package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	window   int
	tempDir  string
	inMemory bool
	lastCall string
}

var errNegative = errors.New("window cannot be negative")

func withWindow(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errNegative
		}
		c.window = n
		c.lastCall = "window"

		return nil
	})
}

func withTempDir(dir string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.tempDir = dir
		c.lastCall = "tempDir"
	})
}

func withInMemory() Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.inMemory = true
		c.lastCall = "inMemory"
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withWindow(16), withTempDir("/tmp/x"), withInMemory())
		require.NoError(t, err)
		require.Equal(t, 16, cfg.window)
		require.Equal(t, "/tmp/x", cfg.tempDir)
		require.True(t, cfg.inMemory)
		require.Equal(t, "inMemory", cfg.lastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withWindow(4), withWindow(-1), withTempDir("unused"))
		require.ErrorIs(t, err, errNegative)
		require.Equal(t, 4, cfg.window)
		require.Empty(t, cfg.tempDir)
		require.Equal(t, "window", cfg.lastCall)
	})

	t.Run("empty and nil options", func(t *testing.T) {
		cfg := &testConfig{window: 7}
		require.NoError(t, Apply(cfg))
		require.NoError(t, Apply(cfg, nil, withTempDir("d"), nil))
		require.Equal(t, 7, cfg.window)
		require.Equal(t, "d", cfg.tempDir)
	})
}

func TestOption_PrimitiveTarget(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })
	require.NoError(t, opt(&n))
	require.Equal(t, 42, n)
}
