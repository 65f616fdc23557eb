package models

// Image is a child record owned by a content entity. The stored file lives
// behind Path; responses never embed image bytes.
type Image struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type,omitempty"`
}

// Paths returns just the file references, the shape list/detail views expose.
func Paths(images []Image) []string {
	paths := make([]string, 0, len(images))
	for _, img := range images {
		paths = append(paths, img.Path)
	}
	return paths
}
