package elft

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// TemplateType says which side of a search a template is created for.
type TemplateType uint8

const (
	// Probe templates are made from latent prints and searched.
	Probe TemplateType = iota
	// Reference templates are made from exemplars and enrolled.
	Reference
)

func (t TemplateType) String() string {
	switch t {
	case Probe:
		return "Probe"
	case Reference:
		return "Reference"
	}
	return fmt.Sprintf("TemplateType(%d)", uint8(t))
}

// Image is a single grayscale friction ridge image.
type Image struct {
	// Identifier distinguishes images submitted together, and is referenced
	// by EFS.ImageIdentifier and correspondence input identifiers.
	Identifier uint8
	Width      uint16
	Height     uint16
	// PPI is the resolution in pixels per inch.
	PPI uint16
	// BPC is the number of bits per color component (8 or 16).
	BPC uint8
	// BPP is the number of bits per pixel.
	BPP uint8
	// Pixels holds Height rows of Width pixels, top-left first. 16 bit
	// components are big-endian.
	Pixels []byte
}

// NewImage returns an Image holding exactly the given values. The pixel slice
// is not copied and nothing is checked; see Validate.
func NewImage(identifier uint8, width, height, ppi uint16, bpc, bpp uint8, pixels []byte) Image {
	return Image{
		Identifier: identifier,
		Width:      width,
		Height:     height,
		PPI:        ppi,
		BPC:        bpc,
		BPP:        bpp,
		Pixels:     pixels,
	}
}

// BytesPerPixel returns BPP rounded up to whole bytes.
func (i Image) BytesPerPixel() int {
	return (int(i.BPP) + 7) / 8
}

// ExpectedPixelLen returns the buffer length implied by the geometry.
func (i Image) ExpectedPixelLen() int {
	return int(i.Width) * int(i.Height) * i.BytesPerPixel()
}

// Validate checks that the image geometry is sane and agrees with the pixel
// buffer. Errors wrap ErrInvalidImage.
func (i Image) Validate() error {
	switch {
	case i.Width == 0 || i.Height == 0:
		return fmt.Errorf("%w: empty geometry %dx%d", ErrInvalidImage, i.Width, i.Height)
	case i.PPI == 0:
		return fmt.Errorf("%w: resolution not set", ErrInvalidImage)
	case i.BPC != 8 && i.BPC != 16:
		return fmt.Errorf("%w: unsupported bits per component %d", ErrInvalidImage, i.BPC)
	case i.BPP < i.BPC || i.BPP%i.BPC != 0:
		return fmt.Errorf("%w: %d bits per pixel is not a multiple of %d bits per component",
			ErrInvalidImage, i.BPP, i.BPC)
	case len(i.Pixels) != i.ExpectedPixelLen():
		return fmt.Errorf("%w: have %d bytes of pixels, want %d",
			ErrInvalidImage, len(i.Pixels), i.ExpectedPixelLen())
	}
	return nil
}

// Coordinate is a pixel location, origin at the top-left of the image.
type Coordinate struct {
	X uint32
	Y uint32
}

// Equal reports whether both components match.
func (c Coordinate) Equal(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// Less orders coordinates by ascending X, then ascending Y.
func (c Coordinate) Less(o Coordinate) bool {
	return CompareCoordinates(c, o) < 0
}

// CompareCoordinates returns -1, 0 or +1 following the order of Less.
func CompareCoordinates(a, b Coordinate) int {
	switch {
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	}
	return 0
}

// MinutiaType is the kind of ridge event at a minutia.
type MinutiaType uint8

const (
	RidgeEnding MinutiaType = iota
	Bifurcation
	MinutiaOther
)

func (t MinutiaType) String() string {
	switch t {
	case RidgeEnding:
		return "RidgeEnding"
	case Bifurcation:
		return "Bifurcation"
	case MinutiaOther:
		return "Other"
	}
	return fmt.Sprintf("MinutiaType(%d)", uint8(t))
}

// Minutia is a ridge ending or bifurcation.
type Minutia struct {
	Coordinate Coordinate
	// Theta is the direction in degrees, counter-clockwise from the right.
	Theta uint16
	Type  MinutiaType
}

// NewMinutia returns a Minutia holding the given values.
func NewMinutia(coordinate Coordinate, theta uint16, typ MinutiaType) Minutia {
	return Minutia{Coordinate: coordinate, Theta: theta, Type: typ}
}

// Correspondence pairs a minutia of a reference input with one of a probe
// input. Input identifiers are Image.Identifier values of each side.
type Correspondence struct {
	ReferenceInputIdentifier uint8
	ReferenceMinutia         Minutia
	ProbeInputIdentifier     uint8
	ProbeMinutia             Minutia
}

// NewCorrespondence returns a Correspondence holding the given values.
func NewCorrespondence(referenceInput uint8, reference Minutia, probeInput uint8, probe Minutia) Correspondence {
	return Correspondence{
		ReferenceInputIdentifier: referenceInput,
		ReferenceMinutia:         reference,
		ProbeInputIdentifier:     probeInput,
		ProbeMinutia:             probe,
	}
}

// Candidate is one entry of a search's candidate list.
type Candidate struct {
	// Identifier of the reference template.
	Identifier string
	// FRGP is the position within the reference that most resembled the probe.
	FRGP FrictionRidgeGeneralizedPosition
	// Similarity is larger for more similar templates.
	Similarity float64
}

// NewCandidate returns a Candidate holding the given values.
func NewCandidate(identifier string, frgp FrictionRidgeGeneralizedPosition, similarity float64) Candidate {
	return Candidate{Identifier: identifier, FRGP: frgp, Similarity: similarity}
}

// Equal reports whether every field of c and o matches.
func (c Candidate) Equal(o Candidate) bool {
	return c.Similarity == o.Similarity &&
		c.Identifier == o.Identifier &&
		c.FRGP == o.FRGP
}

// CompareBySimilarity returns -1, 0 or +1 by ascending similarity alone.
//
// Two candidates that compare as 0 are not necessarily Equal, so this is
// not an identity order and must not key a set or map.
func CompareBySimilarity(a, b Candidate) int {
	switch {
	case a.Similarity < b.Similarity:
		return -1
	case a.Similarity > b.Similarity:
		return 1
	}
	return 0
}

// SortCandidates orders candidates by descending similarity. Candidates of
// equal similarity keep their relative order.
func SortCandidates(candidates []Candidate) {
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return CompareBySimilarity(b, a)
	})
}

// CBEFFIdentifier is an IBIA registered CBEFF product owner and algorithm.
type CBEFFIdentifier struct {
	Owner     uint16
	Algorithm *uint16
}

// ProductIdentifier names an algorithm for humans, machines, or both.
type ProductIdentifier struct {
	Marketing string
	CBEFF     *CBEFFIdentifier
}

func (p ProductIdentifier) String() string {
	s := p.Marketing
	if s == "" {
		s = "(unnamed)"
	}
	if p.CBEFF != nil {
		s += fmt.Sprintf(" [owner 0x%04X", p.CBEFF.Owner)
		if p.CBEFF.Algorithm != nil {
			s += fmt.Sprintf(", algorithm 0x%04X", *p.CBEFF.Algorithm)
		}
		s += "]"
	}
	return s
}

// SubmissionIdentification is how an implementation identifies itself.
type SubmissionIdentification struct {
	VersionNumber     uint16
	LibraryIdentifier string

	ExemplarAlgorithmIdentifier *ProductIdentifier
	LatentAlgorithmIdentifier   *ProductIdentifier
}

// NewSubmissionIdentification returns a SubmissionIdentification holding the
// given values.
func NewSubmissionIdentification(version uint16, library string, exemplar, latent *ProductIdentifier) SubmissionIdentification {
	return SubmissionIdentification{
		VersionNumber:               version,
		LibraryIdentifier:           library,
		ExemplarAlgorithmIdentifier: exemplar,
		LatentAlgorithmIdentifier:   latent,
	}
}

func (s SubmissionIdentification) String() string {
	return fmt.Sprintf("%s v%d", s.LibraryIdentifier, s.VersionNumber)
}
