package lightbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSite(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "img", "house-480.jpg"), 10)
	writeFile(t, filepath.Join(root, "img", "house-1200.jpg"), 40)
	writeFile(t, filepath.Join(root, "gallery", "photos", "tree-small.jpg"), 10)
	writeFile(t, filepath.Join(root, "gallery", "photos", "tree-big.jpg"), 90)
	return root
}

func TestAnnotate_RootRelativeSrc(t *testing.T) {
	root := newSite(t)
	a, err := NewAnnotator(root, false)
	require.NoError(t, err)

	out, images, modified := a.Annotate(`<p><img src="/img/house-480.jpg" alt="house"></p>`, filepath.Join(a.Root, "gallery"))

	assert.True(t, modified)
	require.Len(t, images, 1)
	assert.Equal(t, filepath.Join(a.Root, "img", "house-1200.jpg"), images[0].Largest)
	assert.Equal(t, `<p><img src="/img/house-480.jpg" alt="house" data-lightbox-src="../img/house-1200.jpg"></p>`, out)
}

func TestAnnotate_DocumentRelativeSingleQuotedSrc(t *testing.T) {
	root := newSite(t)
	a, err := NewAnnotator(root, false)
	require.NoError(t, err)

	out, _, modified := a.Annotate(`<IMG class='x' src='photos/tree-small.jpg'>`, filepath.Join(a.Root, "gallery"))

	assert.True(t, modified)
	assert.Equal(t, `<img class='x' src='photos/tree-small.jpg' data-lightbox-src="photos/tree-big.jpg">`, out)
}

func TestAnnotate_FallsBackToRootRelative(t *testing.T) {
	root := newSite(t)
	a, err := NewAnnotator(root, false)
	require.NoError(t, err)

	out, images, modified := a.Annotate(`<img src="img/house-480.jpg">`, filepath.Join(a.Root, "gallery"))

	assert.True(t, modified)
	assert.Equal(t, filepath.Join(a.Root, "img", "house-480.jpg"), images[0].Candidate)
	assert.Contains(t, out, `data-lightbox-src="../img/house-1200.jpg"`)
}

func TestAnnotate_SelfClosingKeepsSlash(t *testing.T) {
	root := newSite(t)
	a, err := NewAnnotator(root, false)
	require.NoError(t, err)

	out, _, _ := a.Annotate(`<img src="/img/house-480.jpg" />`, a.Root)

	assert.Equal(t, `<img src="/img/house-480.jpg" data-lightbox-src="img/house-1200.jpg" />`, out)
}

func TestAnnotate_SkipsAnnotatedAndMissing(t *testing.T) {
	root := newSite(t)
	a, err := NewAnnotator(root, false)
	require.NoError(t, err)

	text := `<img src="/img/house-480.jpg" data-lightbox-src="x.jpg"><img src="https://cdn.example.com/a.jpg">`
	out, images, modified := a.Annotate(text, a.Root)

	assert.False(t, modified)
	assert.Equal(t, text, out)
	require.Len(t, images, 1)
	assert.Empty(t, images[0].Largest)
}

func TestAnnotateFile_WritesAndIsIdempotent(t *testing.T) {
	root := newSite(t)
	page := filepath.Join(root, "index.html")
	require.NoError(t, os.WriteFile(page, []byte(`<img src="img/house-480.jpg">`), 0644))

	a, err := NewAnnotator(root, false)
	require.NoError(t, err)

	change, err := a.AnnotateFile(filepath.Join(a.Root, "index.html"))
	require.NoError(t, err)
	assert.True(t, change.Modified)
	assert.Equal(t, "index.html", change.Path)

	content, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Equal(t, `<img src="img/house-480.jpg" data-lightbox-src="img/house-1200.jpg">`, string(content))

	change, err = a.AnnotateFile(filepath.Join(a.Root, "index.html"))
	require.NoError(t, err)
	assert.False(t, change.Modified)
}

func TestAnnotateFile_DryRunLeavesFile(t *testing.T) {
	root := newSite(t)
	page := filepath.Join(root, "index.html")
	original := `<img src="img/house-480.jpg">`
	require.NoError(t, os.WriteFile(page, []byte(original), 0644))

	a, err := NewAnnotator(root, true)
	require.NoError(t, err)

	change, err := a.AnnotateFile(filepath.Join(a.Root, "index.html"))
	require.NoError(t, err)
	assert.True(t, change.Modified)

	content, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestRun_SkipsIgnoredDirectories(t *testing.T) {
	root := newSite(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte(`<img src="img/house-480.jpg">`), 0644))
	writeFile(t, filepath.Join(root, "0", "old.html"), 1)
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "readme.html"), 1)

	a, err := NewAnnotator(root, true)
	require.NoError(t, err)

	scanned, changes, err := a.Run(DefaultIgnoreDirs)
	require.NoError(t, err)
	assert.Equal(t, 1, scanned)
	require.Len(t, changes, 1)
	assert.Equal(t, "index.html", changes[0].Path)
}

func TestAnnotateFile_ReadError(t *testing.T) {
	a, err := NewAnnotator(t.TempDir(), false)
	require.NoError(t, err)

	_, err = a.AnnotateFile(filepath.Join(a.Root, "missing.html"))
	var lbErr *Error
	assert.ErrorAs(t, err, &lbErr)
}
