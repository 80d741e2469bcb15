package config_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/cheatnav/pkg/config"
	"github.com/arthur-debert/cheatnav/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigContent(t *testing.T) {
	testutil.NewEnvironment(t)

	content, err := config.GenerateConfigContent()
	require.NoError(t, err)

	assert.Contains(t, content, "# cheatnav configuration")
	assert.Contains(t, content, "# Colors: black, dark_red")
	assert.Contains(t, content, "# Finders: fzf, skim")
	assert.Contains(t, content, "style:\n  tag:\n    # color: cyan\n")
	assert.Contains(t, content, "finder:\n  # command: fzf\n")
	assert.Contains(t, content, "  # overrides: ")
	assert.Contains(t, content, "  # overrides_var: CHEATNAV_FINDER_OVERRIDES\n")
	assert.Contains(t, content, "# tags: git,docker")
	assert.Contains(t, content, "# path: ")

	cfg, err := config.FromString(content)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestGenerateConfigContent_Uncommented(t *testing.T) {
	testutil.NewEnvironment(t)

	content, err := config.GenerateConfigContent()
	require.NoError(t, err)

	edited := strings.Replace(content, "# color: cyan", "color: magenta", 1)
	cfg, err := config.FromString(edited)
	require.NoError(t, err)
	assert.Equal(t, "magenta", cfg.Style.Tag.Color.String())
}
