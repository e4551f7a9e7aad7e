package content

import "time"

// WorkItem is one discovered content file paired with its metadata file.
// Type is the name of the file's immediate parent directory under the
// content root; it is empty for files sitting directly in the root, which
// the resolver rejects.
type WorkItem struct {
	ContentPath string
	MetaPath    string
	Type        string
}

// Meta holds the validated metadata of a single content item.
type Meta struct {
	Title    string
	Date     time.Time
	Author   string
	Tags     []string
	Template string
	Cover    string
	Draft    bool
	Extra    map[string]string
}

// ResolvedItem is a WorkItem whose metadata has been parsed and whose slug,
// output path, and canonical URL have been computed. Template carries the
// effective content template: the metadata override when present, the
// type's default otherwise.
type ResolvedItem struct {
	WorkItem

	Meta       Meta
	Slug       string
	OutputPath string
	URL        string
	Template   string
}

// Item is the immutable unit entity of the pipeline. It is constructed
// exactly once by the loader and shared by reference afterwards; nothing
// mutates it post construction, so concurrent readers need no locking.
type Item struct {
	SourcePath string
	Type       string

	Slug       string
	OutputPath string
	URL        string
	Template   string

	Raw     []byte
	HTML    []byte
	Excerpt string

	Meta Meta
}
