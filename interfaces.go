package elft

import "context"

// Sample is one input to template creation. At least one of Image and EFS
// is set. When both are set they describe the same print.
type Sample struct {
	Image *Image
	EFS   *EFS
}

// CreateTemplateResult is the output of Extractor.CreateTemplate.
type CreateTemplateResult struct {
	Status ReturnStatus
	// Data is the opaque template. It is only meaningful to the
	// implementation that created it.
	Data []byte
}

// TemplateDataResult is the output of Extractor.ExtractTemplateData.
type TemplateDataResult struct {
	Status ReturnStatus
	// Features holds one EFS per image that contributed to the template.
	Features []EFS
}

// SearchResult is the output of Searcher.Search.
type SearchResult struct {
	Status ReturnStatus
	// Decision is true when the implementation believes the probe's source
	// is among the candidates.
	Decision bool
	// Candidates has at most the requested number of entries, ordered by
	// descending similarity.
	Candidates []Candidate
}

// CorrespondenceResult is the output of Searcher.ExtractCorrespondence.
type CorrespondenceResult struct {
	Status ReturnStatus
	// Complex is true when correspondence cannot be described by minutiae
	// pairs alone.
	Complex         bool
	Correspondences []Correspondence
}

// TemplateReader gives an Extractor access to reference templates while it
// builds a reference database.
type TemplateReader interface {
	// Identifiers lists every template that can be read.
	Identifiers() []string
	// Read returns the template stored under identifier.
	Read(identifier string) ([]byte, error)
}

// Extractor turns images and features into templates and enrolls reference
// templates into a database. Implementations must be safe for concurrent
// CreateTemplate and ExtractTemplateData calls.
type Extractor interface {
	// Identification describes the implementation.
	Identification() SubmissionIdentification

	// CreateTemplate creates a probe or reference template from samples of
	// the same subject. identifier is the name the template will be stored
	// under.
	CreateTemplate(ctx context.Context, templateType TemplateType, identifier string, samples []Sample) CreateTemplateResult

	// ExtractTemplateData describes the features stored in a template made
	// by CreateTemplate.
	ExtractTemplateData(ctx context.Context, templateType TemplateType, template CreateTemplateResult) TemplateDataResult

	// CreateReferenceDatabase enrolls every template readable from
	// references into databaseDir. The database may not exceed maxSize
	// bytes on disk.
	CreateReferenceDatabase(ctx context.Context, references TemplateReader, databaseDir string, maxSize uint64) ReturnStatus
}

// Searcher searches probe templates against a reference database created by
// the same implementation's Extractor.
type Searcher interface {
	// Identification describes the implementation.
	Identification() SubmissionIdentification

	// Load prepares the reference database for searching. At most maxSize
	// bytes of the database may be held in memory.
	Load(ctx context.Context, maxSize uint64) ReturnStatus

	// Search returns up to maxCandidates candidates for a probe template.
	Search(ctx context.Context, probeTemplate []byte, maxCandidates uint16) SearchResult

	// ExtractCorrespondence explains a search result with corresponding
	// minutiae. Implementations may return NotImplemented.
	ExtractCorrespondence(ctx context.Context, probeTemplate []byte, result SearchResult) CorrespondenceResult
}
