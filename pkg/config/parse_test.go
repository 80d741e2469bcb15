package config_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/cheatnav/pkg/config"
	"github.com/arthur-debert/cheatnav/pkg/errors"
	"github.com/arthur-debert/cheatnav/pkg/finder"
	"github.com/arthur-debert/cheatnav/pkg/style"
	"github.com/arthur-debert/cheatnav/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"tag color", cfg.Style.Tag.Color, style.Cyan},
		{"tag width", cfg.Style.Tag.WidthPercentage, uint16(26)},
		{"tag min width", cfg.Style.Tag.MinWidth, uint16(20)},
		{"comment color", cfg.Style.Comment.Color, style.Blue},
		{"comment width", cfg.Style.Comment.WidthPercentage, uint16(42)},
		{"comment min width", cfg.Style.Comment.MinWidth, uint16(45)},
		{"snippet", cfg.Style.Snippet, config.DefaultColorWidth()},
		{"finder", cfg.Finder.Command, finder.Fzf},
		{"shell", cfg.Shell.Command, "bash"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	assert.Nil(t, cfg.Finder.Overrides)
	assert.Nil(t, cfg.Finder.OverridesVar)
	assert.Nil(t, cfg.Cheats.Path)
	assert.Nil(t, cfg.Search.Tags)
	assert.Equal(t, config.DefaultColorWidth(), config.ColorWidth{
		Color: style.Blue, WidthPercentage: 26, MinWidth: 20,
	})
}

func TestDefault_ReturnsFreshValue(t *testing.T) {
	a := config.Default()
	a.Shell.Command = "zsh"
	assert.Equal(t, "bash", config.Default().Shell.Command)
}

func TestFromString_EmptyDocuments(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":         "",
		"whitespace":    "  \n\n",
		"comments only": "# nothing here\n",
		"empty mapping": "{}",
		"null":          "~",
		"null sections": "style:\nfinder:\n",
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := config.FromString(doc)
			require.NoError(t, err)
			assert.Equal(t, config.Default(), cfg)
		})
	}
}

func TestFromString_PartialOverlay(t *testing.T) {
	cfg, err := config.FromString("style:\n  tag:\n    color: red\n")
	require.NoError(t, err)

	want := config.Default()
	want.Style.Tag.Color = style.Red
	assert.Equal(t, want, cfg)
	assert.Equal(t, uint16(26), cfg.Style.Tag.WidthPercentage)
	assert.Equal(t, uint16(20), cfg.Style.Tag.MinWidth)
}

func TestFromString_FullDocument(t *testing.T) {
	doc := `
style:
  tag:
    color: dark_green
    width_percentage: 30
    min_width: 10
  comment:
    color: Yellow
  snippet:
    min_width: 5
finder:
  command: skim
  overrides: --height 40%
  overrides_var: CHEATNAV_FINDER_OVERRIDES
cheats:
  path: /srv/cheats
search:
  tags: git,docker
shell:
  command: zsh
`
	cfg, err := config.FromString(doc)
	require.NoError(t, err)

	assert.Equal(t, config.ColorWidth{Color: style.DarkGreen, WidthPercentage: 30, MinWidth: 10}, cfg.Style.Tag)
	assert.Equal(t, config.ColorWidth{Color: style.Yellow, WidthPercentage: 42, MinWidth: 45}, cfg.Style.Comment)
	assert.Equal(t, config.ColorWidth{Color: style.Blue, WidthPercentage: 26, MinWidth: 5}, cfg.Style.Snippet)
	assert.Equal(t, finder.Skim, cfg.Finder.Command)
	assert.Equal(t, testutil.StrPtr("--height 40%"), cfg.Finder.Overrides)
	assert.Equal(t, testutil.StrPtr("CHEATNAV_FINDER_OVERRIDES"), cfg.Finder.OverridesVar)
	assert.Equal(t, testutil.StrPtr("/srv/cheats"), cfg.Cheats.Path)
	assert.Equal(t, testutil.StrPtr("git,docker"), cfg.Search.Tags)
	assert.Equal(t, "zsh", cfg.Shell.Command)
}

func TestFromString_ExplicitDocumentStart(t *testing.T) {
	cfg, err := config.FromString("---\nshell:\n  command: zsh\n")
	require.NoError(t, err)
	assert.Equal(t, "zsh", cfg.Shell.Command)
}

func TestFromString_UnknownKeysIgnored(t *testing.T) {
	cfg, err := config.FromString("client:\n  tealdeer: true\nshell:\n  command: fish\n")
	require.NoError(t, err)
	assert.Equal(t, "fish", cfg.Shell.Command)
}

func TestFromString_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		code     errors.ErrorCode
		contains string
	}{
		{"unknown color", "style:\n  tag:\n    color: not-a-color\n", errors.ErrConfigInvalid, "not-a-color"},
		{"color mapping", "style:\n  tag:\n    color:\n      r: 1\n", errors.ErrConfigInvalid, ""},
		{"unknown finder", "finder:\n  command: nonexistent-tool\n", errors.ErrConfigInvalid, "nonexistent-tool"},
		{"finder wrong case", "finder:\n  command: FZF\n", errors.ErrConfigInvalid, "FZF"},
		{"width overflow", "style:\n  tag:\n    width_percentage: 70000\n", errors.ErrConfigInvalid, "70000"},
		{"negative width", "style:\n  comment:\n    min_width: -1\n", errors.ErrConfigInvalid, ""},
		{"section wrong kind", "style: 3\n", errors.ErrConfigInvalid, ""},
		{"syntax", "style: [\n", errors.ErrConfigParse, ""},
		{"nested mapping on one line", "shell: command: zsh\n", errors.ErrConfigParse, ""},
		{"second document invalid", "shell:\n  command: zsh\n---\nfinder:\n  command: nonexistent-tool\n", errors.ErrConfigParse, "multiple YAML documents"},
		{"second document valid", "shell:\n  command: zsh\n---\nshell:\n  command: fish\n", errors.ErrConfigParse, "multiple YAML documents"},
		{"second document broken", "shell:\n  command: zsh\n---\nstyle: [\n", errors.ErrConfigParse, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.FromString(tt.doc)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestFromString_Idempotent(t *testing.T) {
	doc := "finder:\n  command: skim\nstyle:\n  snippet:\n    color: magenta\n"

	first, err := config.FromString(doc)
	require.NoError(t, err)
	second, err := config.FromString(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFromReader(t *testing.T) {
	cfg, err := config.FromReader(strings.NewReader("shell:\n  command: sh\n"))
	require.NoError(t, err)
	assert.Equal(t, "sh", cfg.Shell.Command)
}

func TestFromPath(t *testing.T) {
	fs := testutil.NewMemoryFS()
	fs.AddFile(t, "/cfg/ok.yaml", "finder:\n  command: SKIM\n")
	fs.AddFile(t, "/cfg/bad.yaml", "finder:\n  command: peco\n")
	fs.AddDir(t, "/cfg/dir.yaml")

	t.Run("valid", func(t *testing.T) {
		cfg, err := config.FromPath(fs, "/cfg/ok.yaml")
		require.NoError(t, err)
		assert.Equal(t, finder.Skim, cfg.Finder.Command)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := config.FromPath(fs, "/cfg/missing.yaml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceUnavailable))
		assert.Equal(t, "/cfg/missing.yaml", errors.GetErrorDetails(err)["path"])
	})

	t.Run("directory", func(t *testing.T) {
		_, err := config.FromPath(fs, "/cfg/dir.yaml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceUnavailable))
	})

	t.Run("invalid content carries path", func(t *testing.T) {
		_, err := config.FromPath(fs, "/cfg/bad.yaml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
		assert.Equal(t, "/cfg/bad.yaml", errors.GetErrorDetails(err)["path"])
	})
}
