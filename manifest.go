package pagemeta

// DocumentType classifies a generated documentation page.
type DocumentType string

// Document types recognized by the tagging pipeline. Manifest entries with
// any other type are skipped.
const (
	TypeConceptual DocumentType = "Conceptual"
	TypeReference  DocumentType = "Reference"
)

// Known reports whether the document type participates in metadata tagging.
func (t DocumentType) Known() bool {
	return t == TypeConceptual || t == TypeReference
}

// Manifest enumerates the files produced by a documentation build.
// It is the machine-readable output manifest the build writes next to the
// rendered site.
type Manifest struct {
	Files []ManifestFile `json:"files"`
}

// ManifestFile describes one source document and the output files rendered
// from it. A single source can fan out to multiple output files (e.g.,
// localized variants), keyed by output extension; each output file is
// processed independently under the same document type.
type ManifestFile struct {
	Type               string                `json:"type"`
	SourceRelativePath string                `json:"source_relative_path"`
	Output             map[string]OutputFile `json:"output"`
}

// DocumentType returns the entry's type tag.
func (f *ManifestFile) DocumentType() DocumentType {
	return DocumentType(f.Type)
}

// OutputFile locates one rendered file relative to the site output root.
type OutputFile struct {
	RelativePath string `json:"relative_path"`
}
