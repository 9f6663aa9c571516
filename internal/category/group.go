package category

// GroupedFile is one (name, modified) pair inside a category's list.
type GroupedFile struct {
	Name     string
	Modified string
}

// Grouped is the re-indexed form of Assignments consumed by every exporter:
// category label → ordered list of files. Categories are iterated in the
// set's canonical order and empty categories are omitted entirely, which
// governs which section headers appear in the output.
type Grouped struct {
	set   *Set
	files map[string][]GroupedFile
}

// Group re-indexes the flat assignment map by category. It is a total
// function: any assignments value, including empty, produces a valid result.
// Within a category, files keep the relative order in which they appear in
// the assignment mapping.
func Group(a *Assignments) Grouped {
	g := Grouped{
		set:   a.Set(),
		files: make(map[string][]GroupedFile),
	}
	for _, e := range a.Entries() {
		g.files[e.Category] = append(g.files[e.Category], GroupedFile{
			Name:     e.Name,
			Modified: e.Modified,
		})
	}
	return g
}

// Categories returns the non-empty categories in canonical set order.
func (g Grouped) Categories() []string {
	var out []string
	for _, label := range g.set.Labels() {
		if len(g.files[label]) > 0 {
			out = append(out, label)
		}
	}
	return out
}

// Files returns the ordered file list for a category.
func (g Grouped) Files(category string) []GroupedFile {
	return g.files[category]
}

// Empty reports whether no category has any assigned file.
func (g Grouped) Empty() bool {
	return len(g.files) == 0
}
