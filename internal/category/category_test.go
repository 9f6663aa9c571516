package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/filecat/internal/fileutil"
)

func defaultSet(t *testing.T) *Set {
	t.Helper()
	set, err := NewSet([]string{"CONTRACTUAL", "ARCHITECTURAL", "STRUCTURAL", "SERVICES", "SAFETY", "OTHER"})
	require.NoError(t, err)
	return set
}

func record(path, name, modified string) fileutil.FileRecord {
	return fileutil.FileRecord{
		Name:         name,
		Modified:     modified,
		AbsolutePath: "/resolved/" + path,
		DisplayPath:  path,
	}
}

func TestNewSetValidation(t *testing.T) {
	_, err := NewSet(nil)
	assert.Error(t, err)

	_, err = NewSet([]string{"A", "A"})
	assert.Error(t, err)

	_, err = NewSet([]string{"A", " "})
	assert.Error(t, err)
}

func TestSetLabelsCopy(t *testing.T) {
	set := defaultSet(t)
	labels := set.Labels()
	labels[0] = "MUTATED"
	assert.Equal(t, "CONTRACTUAL", set.Labels()[0])
}

func TestAssignInvalidCategory(t *testing.T) {
	a := NewAssignments(defaultSet(t))

	err := a.Assign(record("a.txt", "a.txt", "2024-01-01"), "NONSENSE")

	var invalid *InvalidCategoryError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "NONSENSE", invalid.Category)
	assert.Equal(t, 0, a.Len())
}

func TestAssignInsertionOrder(t *testing.T) {
	a := NewAssignments(defaultSet(t))
	require.NoError(t, a.Assign(record("b.txt", "b.txt", "2024-01-02"), "SERVICES"))
	require.NoError(t, a.Assign(record("a.txt", "a.txt", "2024-01-01"), "SAFETY"))
	require.NoError(t, a.Assign(record("c.txt", "c.txt", "2024-01-03"), "SERVICES"))

	entries := a.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "b.txt", entries[0].Path)
	assert.Equal(t, "a.txt", entries[1].Path)
	assert.Equal(t, "c.txt", entries[2].Path)
}

func TestReassignKeepsPosition(t *testing.T) {
	a := NewAssignments(defaultSet(t))
	require.NoError(t, a.Assign(record("a.txt", "a.txt", "2024-01-01"), "SAFETY"))
	require.NoError(t, a.Assign(record("b.txt", "b.txt", "2024-01-02"), "SERVICES"))
	require.NoError(t, a.Assign(record("a.txt", "a.txt", "2024-01-01"), "OTHER"))

	entries := a.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Path)
	assert.Equal(t, "OTHER", entries[0].Category)
}

func TestPathKeyedNoNameCollision(t *testing.T) {
	a := NewAssignments(defaultSet(t))
	require.NoError(t, a.Assign(record("sub1/report.pdf", "report.pdf", "2024-01-01"), "SAFETY"))
	require.NoError(t, a.Assign(record("sub2/report.pdf", "report.pdf", "2024-02-01"), "SERVICES"))

	// Identical names in different directories stay distinct
	assert.Equal(t, 2, a.Len())
}

func TestReconcileDropsStaleEntries(t *testing.T) {
	a := NewAssignments(defaultSet(t))
	require.NoError(t, a.Assign(record("a.txt", "a.txt", "2024-01-01"), "SAFETY"))
	require.NoError(t, a.Assign(record("gone.txt", "gone.txt", "2024-01-01"), "OTHER"))

	dropped := a.Reconcile([]fileutil.FileRecord{record("a.txt", "a.txt", "2024-01-01")})

	assert.Equal(t, []string{"gone.txt"}, dropped)
	assert.Equal(t, 1, a.Len())
	_, ok := a.Get("gone.txt")
	assert.False(t, ok)
}

func TestContentHash(t *testing.T) {
	build := func(assign func(a *Assignments)) string {
		a := NewAssignments(defaultSet(t))
		assign(a)
		return a.ContentHash()
	}

	base := build(func(a *Assignments) {
		a.Assign(record("a.txt", "a.txt", "2024-01-01"), "SAFETY")
		a.Assign(record("b.txt", "b.txt", "2024-01-02"), "SERVICES")
	})

	same := build(func(a *Assignments) {
		a.Assign(record("a.txt", "a.txt", "2024-01-01"), "SAFETY")
		a.Assign(record("b.txt", "b.txt", "2024-01-02"), "SERVICES")
	})
	assert.Equal(t, base, same, "identical content hashes identically")

	differentCategory := build(func(a *Assignments) {
		a.Assign(record("a.txt", "a.txt", "2024-01-01"), "OTHER")
		a.Assign(record("b.txt", "b.txt", "2024-01-02"), "SERVICES")
	})
	assert.NotEqual(t, base, differentCategory)

	differentOrder := build(func(a *Assignments) {
		a.Assign(record("b.txt", "b.txt", "2024-01-02"), "SERVICES")
		a.Assign(record("a.txt", "a.txt", "2024-01-01"), "SAFETY")
	})
	assert.NotEqual(t, base, differentOrder)
}

func TestGroupPartition(t *testing.T) {
	a := NewAssignments(defaultSet(t))
	require.NoError(t, a.Assign(record("a.txt", "a.txt", "2024-01-01"), "SAFETY"))
	require.NoError(t, a.Assign(record("b.txt", "b.txt", "2024-01-02"), "SERVICES"))
	require.NoError(t, a.Assign(record("c.txt", "c.txt", "2024-01-03"), "SERVICES"))

	g := Group(a)

	total := 0
	seen := make(map[string]bool)
	for _, cat := range g.Categories() {
		for _, f := range g.Files(cat) {
			assert.False(t, seen[f.Name], "file %s appears in more than one category", f.Name)
			seen[f.Name] = true
			total++
		}
	}
	assert.Equal(t, a.Len(), total)
	assert.True(t, seen["a.txt"] && seen["b.txt"] && seen["c.txt"])
}

func TestGroupCanonicalOrder(t *testing.T) {
	a := NewAssignments(defaultSet(t))
	// Assigned SAFETY first, but SERVICES precedes SAFETY in the canonical list
	require.NoError(t, a.Assign(record("a.txt", "a.txt", "2024-01-01"), "SAFETY"))
	require.NoError(t, a.Assign(record("b.txt", "b.txt", "2024-01-02"), "SERVICES"))

	g := Group(a)

	assert.Equal(t, []string{"SERVICES", "SAFETY"}, g.Categories())
	assert.Equal(t, []GroupedFile{{Name: "b.txt", Modified: "2024-01-02"}}, g.Files("SERVICES"))
	assert.Equal(t, []GroupedFile{{Name: "a.txt", Modified: "2024-01-01"}}, g.Files("SAFETY"))
}

func TestGroupOmitsEmptyCategories(t *testing.T) {
	a := NewAssignments(defaultSet(t))
	require.NoError(t, a.Assign(record("a.txt", "a.txt", "2024-01-01"), "OTHER"))

	g := Group(a)
	assert.Equal(t, []string{"OTHER"}, g.Categories())
}

func TestGroupEmptyAssignments(t *testing.T) {
	g := Group(NewAssignments(defaultSet(t)))
	assert.True(t, g.Empty())
	assert.Empty(t, g.Categories())
}

func TestGroupWithinCategoryOrder(t *testing.T) {
	a := NewAssignments(defaultSet(t))
	require.NoError(t, a.Assign(record("z.txt", "z.txt", "2024-01-03"), "SERVICES"))
	require.NoError(t, a.Assign(record("a.txt", "a.txt", "2024-01-01"), "SERVICES"))

	g := Group(a)
	files := g.Files("SERVICES")
	require.Len(t, files, 2)
	// Assignment order, not name order
	assert.Equal(t, "z.txt", files[0].Name)
	assert.Equal(t, "a.txt", files[1].Name)
}
