package export

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/filecat/internal/category"
	"github.com/harrison/filecat/internal/logger"
)

// countingRenderer records how many times it rendered.
type countingRenderer struct {
	format Format
	calls  int
}

func (r *countingRenderer) Format() Format { return r.format }

func (r *countingRenderer) Render(category.Grouped) ([]byte, error) {
	r.calls++
	return []byte("rendered-" + string(r.format)), nil
}

// failingRenderer always fails.
type failingRenderer struct {
	format Format
}

func (r *failingRenderer) Format() Format { return r.format }

func (r *failingRenderer) Render(category.Grouped) ([]byte, error) {
	return nil, &RenderError{Format: r.format, Err: errors.New("boom")}
}

func TestServiceExportFanOut(t *testing.T) {
	xlsx := &countingRenderer{format: FormatXLSX}
	pdf := &countingRenderer{format: FormatPDF}
	svc := NewService([]Renderer{xlsx, pdf}, logger.NewConsoleLogger(nil, "info"))

	artifacts, errs := svc.Export(scenarioGrouped(t), "key-1")

	assert.Empty(t, errs)
	require.Len(t, artifacts, 2)
	assert.Equal(t, "Categorized_files.xlsx", artifacts[0].Name)
	assert.Equal(t, "Categorized_files.pdf", artifacts[1].Name)
}

func TestServiceExportFailureWithholdsOnlyThatArtifact(t *testing.T) {
	good := &countingRenderer{format: FormatXLSX}
	bad := &failingRenderer{format: FormatDOCX}
	svc := NewService([]Renderer{good, bad}, logger.NewConsoleLogger(nil, "info"))

	artifacts, errs := svc.Export(scenarioGrouped(t), "key-1")

	require.Len(t, artifacts, 1)
	assert.Equal(t, FormatXLSX, artifacts[0].Format)

	require.Len(t, errs, 1)
	var renderErr *RenderError
	require.ErrorAs(t, errs[0], &renderErr)
	assert.Equal(t, FormatDOCX, renderErr.Format)
}

func TestServiceExportCacheHit(t *testing.T) {
	r := &countingRenderer{format: FormatXLSX}
	svc := NewService([]Renderer{r}, logger.NewConsoleLogger(nil, "info"))
	g := scenarioGrouped(t)

	svc.Export(g, "key-1")
	svc.Export(g, "key-1")
	assert.Equal(t, 1, r.calls, "second export with the same key must hit the cache")

	svc.Export(g, "key-2")
	assert.Equal(t, 2, r.calls, "a changed key must re-render")
}

func TestCacheEvictsOnNewKey(t *testing.T) {
	c := NewCache()
	c.Put("key-1", Artifact{Format: FormatXLSX, Data: []byte("one")})
	c.Put("key-1", Artifact{Format: FormatPDF, Data: []byte("two")})

	_, ok := c.Get("key-1", FormatXLSX)
	assert.True(t, ok)

	c.Put("key-2", Artifact{Format: FormatDOCX, Data: []byte("three")})

	_, ok = c.Get("key-1", FormatXLSX)
	assert.False(t, ok, "old key evicted")
	_, ok = c.Get("key-2", FormatPDF)
	assert.False(t, ok, "other formats not yet rendered under the new key")
	_, ok = c.Get("key-2", FormatDOCX)
	assert.True(t, ok)
}
