package branding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDefaultLogo(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, RenderLogo(&sb, DefaultLogo()))

	out := sb.String()
	assert.Contains(t, out, ">Sport<")
	assert.Contains(t, out, ">hub<")
	assert.Contains(t, out, "background-color:#ff9000")
	assert.Contains(t, out, "height:4px")
	assert.Contains(t, out, "z-index:-1")
}

func TestRenderLogoEscapesText(t *testing.T) {
	var sb strings.Builder
	props := DefaultLogo()
	props.Accent = "<script>"
	require.NoError(t, RenderLogo(&sb, props))

	assert.NotContains(t, sb.String(), "<script>")
	assert.Contains(t, sb.String(), "&lt;script&gt;")
}
