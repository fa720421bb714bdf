package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RenderToSafeHTML(t *testing.T) {
	svc := NewService()

	t.Run("renders basic markdown", func(t *testing.T) {
		out, err := svc.RenderToSafeHTML("# Heading\n\nSome **bold** text.")
		require.NoError(t, err)
		assert.Contains(t, out, "<h1")
		assert.Contains(t, out, "<strong>bold</strong>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		out, err := svc.RenderToSafeHTML("hello <script>alert('x')</script> world")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script")
		assert.NotContains(t, out, "alert")
	})

	t.Run("strips inline event handlers", func(t *testing.T) {
		out, err := svc.RenderToSafeHTML(`<img src="x" onerror="alert(1)">`)
		require.NoError(t, err)
		assert.False(t, strings.Contains(out, "onerror"))
	})

	t.Run("keeps links", func(t *testing.T) {
		out, err := svc.RenderToSafeHTML("[site](https://example.com)")
		require.NoError(t, err)
		assert.Contains(t, out, `href="https://example.com"`)
	})
}
