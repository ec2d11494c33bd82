package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpMarkdownCoversBindingsAndServices(t *testing.T) {
	md := helpMarkdown()

	assert.True(t, strings.HasPrefix(md, "# Nimbus CTL"))
	assert.Contains(t, md, "## Command Palette")
	assert.Contains(t, md, "## Navigation")
	assert.Contains(t, md, "`^p`")
	assert.Contains(t, md, "## Services")
	for _, name := range []string{"EC2", "S3", "RDS", "IAM", "Secrets Manager", "EKS"} {
		assert.Contains(t, md, name)
	}
}

func TestHelpPanelRender(t *testing.T) {
	h := NewHelpPanel()

	out := h.Render()
	assert.Contains(t, out, "Nimbus CTL")
	assert.Contains(t, out, "esc to close")

	// Second render returns the cached content.
	assert.Equal(t, out, h.Render())
}
