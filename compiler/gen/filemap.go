package gen

// File is one generated source file: a relative path and its full
// content.
type File struct {
	Path    string
	Content string
}

// FileMap is an ordered mapping from relative file path to content.
// Entries keep insertion order so repeated runs over the same schema
// produce byte-identical output; nothing is ever sorted or randomized.
type FileMap struct {
	files []File
	index map[string]int
}

// NewFileMap returns an empty file map.
func NewFileMap() *FileMap {
	return &FileMap{index: make(map[string]int)}
}

// Add inserts a file. Writing an existing path replaces its content in
// place and reports false; the position in the ordering is kept.
func (m *FileMap) Add(f *File) bool {
	if f == nil {
		return false
	}
	if i, ok := m.index[f.Path]; ok {
		m.files[i] = *f
		return false
	}
	m.index[f.Path] = len(m.files)
	m.files = append(m.files, *f)
	return true
}

// Merge appends every file of other in order, returning one diagnostic
// per overwritten path. Packs are designed to use disjoint namespaces,
// so collisions indicate a wiring defect worth surfacing.
func (m *FileMap) Merge(other *FileMap) []Diagnostic {
	if other == nil {
		return nil
	}
	var diags []Diagnostic
	for i := range other.files {
		f := other.files[i]
		if !m.Add(&f) {
			diags = append(diags, Diagnostic{
				Kind:   DiagPathCollision,
				Detail: f.Path,
			})
		}
	}
	return diags
}

// Get returns the content stored for the path.
func (m *FileMap) Get(path string) (string, bool) {
	i, ok := m.index[path]
	if !ok {
		return "", false
	}
	return m.files[i].Content, true
}

// Paths returns the paths in insertion order.
func (m *FileMap) Paths() []string {
	paths := make([]string, len(m.files))
	for i, f := range m.files {
		paths[i] = f.Path
	}
	return paths
}

// Files returns the entries in insertion order.
func (m *FileMap) Files() []File {
	return append([]File(nil), m.files...)
}

// Len returns the number of files.
func (m *FileMap) Len() int {
	return len(m.files)
}
