package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_FillsDefaultsAndEscapesTitle(t *testing.T) {
	page, err := Page(Config{Title: "Funnel <API>"})
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "Funnel &lt;API&gt;")
	assert.Contains(t, html, `data-url="/docs/openapi.json"`)
	assert.Contains(t, html, "theme: 'purple'")
}
