package covreport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/covreport/covreport/application/service"
	"github.com/covreport/covreport/domain/snippet"
)

func writeSource(t *testing.T, lines int) string {
	t.Helper()

	segments := make([]string, lines)
	for i := range segments {
		segments[i] = fmt.Sprintf("x%d = %d", i+1, i+1)
	}

	path := filepath.Join(t.TempDir(), "app.py")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(segments, "\n")), 0o644))
	return path
}

func TestClient_Snippets(t *testing.T) {
	client, err := New()
	require.NoError(t, err)

	path := writeSource(t, 100)
	snippets, err := client.Snippets(path, snippet.NewLineSet(30, 31, 32, 35, 36, 60, 62))
	require.NoError(t, err)
	require.Len(t, snippets, 2)

	start, end := snippets[0].LineSpan()
	assert.Equal(t, 26, start)
	assert.Equal(t, 40, end)
}

func TestClient_SnippetsHTML(t *testing.T) {
	client, err := New(WithViolationColor("#ffcccc"))
	require.NoError(t, err)

	path := writeSource(t, 50)
	markup, err := client.SnippetsHTML(path, "10,30")
	require.NoError(t, err)
	require.Len(t, markup, 2)

	for _, m := range markup {
		assert.Contains(t, m, `<div class="snippet">`)
	}
}

func TestClient_SnippetsHTML_BadSpec(t *testing.T) {
	client, err := New()
	require.NoError(t, err)

	_, err = client.SnippetsHTML(writeSource(t, 5), "nonsense")
	assert.Error(t, err)
}

func TestClient_SnippetsHTML_MissingFile(t *testing.T) {
	client, err := New()
	require.NoError(t, err)

	_, err = client.SnippetsHTML(filepath.Join(t.TempDir(), "absent.py"), "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClient_StyleDefs(t *testing.T) {
	client, err := New(WithViolationColor("#123456"))
	require.NoError(t, err)

	css, err := client.StyleDefs()
	require.NoError(t, err)
	assert.Contains(t, css, "#123456")
}

func TestClient_GenerateHTML(t *testing.T) {
	client, err := New()
	require.NoError(t, err)

	path := writeSource(t, 30)
	doc, err := client.GenerateHTML(context.Background(), service.Manifest{
		Files: []service.FileViolations{{Path: path, Lines: "12"}},
	})
	require.NoError(t, err)
	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, `<div class="snippet">`)
}
