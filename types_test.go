package elft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageKeepsFields(t *testing.T) {
	pixels := []byte{0x00, 0x7f, 0xff, 0x10, 0x20, 0x30}
	img := NewImage(3, 3, 2, 500, 8, 8, pixels)

	assert.Equal(t, uint8(3), img.Identifier)
	assert.Equal(t, uint16(3), img.Width)
	assert.Equal(t, uint16(2), img.Height)
	assert.Equal(t, uint16(500), img.PPI)
	assert.Equal(t, uint8(8), img.BPC)
	assert.Equal(t, uint8(8), img.BPP)
	assert.Equal(t, pixels, img.Pixels)
	assert.NoError(t, img.Validate())
}

func TestNewImageDoesNotValidate(t *testing.T) {
	img := NewImage(0, 10, 10, 500, 8, 8, []byte{1, 2, 3})
	assert.Len(t, img.Pixels, 3)
	assert.ErrorIs(t, img.Validate(), ErrInvalidImage)
}

func TestImageValidate(t *testing.T) {
	tests := []struct {
		name  string
		image Image
		ok    bool
	}{
		{"8 bit", NewImage(0, 4, 2, 500, 8, 8, make([]byte, 8)), true},
		{"16 bit", NewImage(0, 4, 2, 1000, 16, 16, make([]byte, 16)), true},
		{"rgb", NewImage(0, 2, 2, 500, 8, 24, make([]byte, 12)), true},
		{"zero width", NewImage(0, 0, 2, 500, 8, 8, nil), false},
		{"zero ppi", NewImage(0, 1, 1, 0, 8, 8, make([]byte, 1)), false},
		{"odd bpc", NewImage(0, 1, 1, 500, 12, 12, make([]byte, 2)), false},
		{"bpp below bpc", NewImage(0, 1, 1, 500, 16, 8, make([]byte, 1)), false},
		{"short buffer", NewImage(0, 4, 2, 500, 8, 8, make([]byte, 7)), false},
		{"long buffer", NewImage(0, 4, 2, 500, 16, 16, make([]byte, 17)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.image.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidImage)
			}
		})
	}
}

func TestCoordinateOrder(t *testing.T) {
	var coords []Coordinate
	for x := uint32(0); x < 4; x++ {
		for y := uint32(0); y < 4; y++ {
			coords = append(coords, Coordinate{X: x, Y: y})
		}
	}

	for _, a := range coords {
		assert.False(t, a.Less(a), "%v < itself", a)
		for _, b := range coords {
			n := 0
			if a.Less(b) {
				n++
			}
			if b.Less(a) {
				n++
			}
			if a.Equal(b) {
				n++
			}
			assert.Equal(t, 1, n, "trichotomy for %v and %v", a, b)

			for _, c := range coords {
				if a.Less(b) && b.Less(c) {
					assert.True(t, a.Less(c), "%v < %v < %v", a, b, c)
				}
			}
		}
	}
}

func TestCoordinateXFirst(t *testing.T) {
	assert.True(t, Coordinate{X: 1, Y: 100}.Less(Coordinate{X: 2, Y: 0}))
	assert.True(t, Coordinate{X: 5, Y: 1}.Less(Coordinate{X: 5, Y: 2}))
	assert.Equal(t, 0, CompareCoordinates(Coordinate{7, 7}, Coordinate{7, 7}))
	assert.Equal(t, 1, CompareCoordinates(Coordinate{8, 0}, Coordinate{7, 9}))
}

func TestCandidateEqualityIsFullField(t *testing.T) {
	a := NewCandidate("00002357", FRGPLeftIndex, 42.5)

	assert.True(t, a.Equal(NewCandidate("00002357", FRGPLeftIndex, 42.5)))
	assert.False(t, a.Equal(NewCandidate("00002644", FRGPLeftIndex, 42.5)))
	assert.False(t, a.Equal(NewCandidate("00002357", FRGPRightIndex, 42.5)))
	assert.False(t, a.Equal(NewCandidate("00002357", FRGPLeftIndex, 42.4)))
}

func TestCandidateOrderIgnoresIdentity(t *testing.T) {
	a := NewCandidate("a", FRGPRightThumb, 10)
	b := NewCandidate("b", FRGPLeftThumb, 10)

	assert.Equal(t, 0, CompareBySimilarity(a, b))
	assert.Equal(t, 0, CompareBySimilarity(b, a))
	assert.False(t, a.Equal(b))

	c := NewCandidate("a", FRGPRightThumb, 11)
	assert.Equal(t, -1, CompareBySimilarity(a, c))
	assert.Equal(t, 1, CompareBySimilarity(c, a))
}

func TestSortCandidates(t *testing.T) {
	list := []Candidate{
		NewCandidate("low", FRGPUnknownFinger, 1),
		NewCandidate("tie-first", FRGPUnknownFinger, 5),
		NewCandidate("high", FRGPUnknownFinger, 9),
		NewCandidate("tie-second", FRGPUnknownFinger, 5),
	}
	SortCandidates(list)

	ids := make([]string, len(list))
	for i, c := range list {
		ids[i] = c.Identifier
	}
	assert.Equal(t, []string{"high", "tie-first", "tie-second", "low"}, ids)
}

func TestCorrespondenceAndMinutia(t *testing.T) {
	ref := NewMinutia(Coordinate{X: 10, Y: 20}, 90, RidgeEnding)
	probe := NewMinutia(Coordinate{X: 11, Y: 19}, 92, Bifurcation)
	c := NewCorrespondence(2, ref, 0, probe)

	assert.Equal(t, uint8(2), c.ReferenceInputIdentifier)
	assert.Equal(t, ref, c.ReferenceMinutia)
	assert.Equal(t, uint8(0), c.ProbeInputIdentifier)
	assert.Equal(t, probe, c.ProbeMinutia)
	assert.Equal(t, "Bifurcation", probe.Type.String())
}

func TestSubmissionIdentification(t *testing.T) {
	alg := uint16(0x0102)
	latent := &ProductIdentifier{Marketing: "Latent 1", CBEFF: &CBEFFIdentifier{Owner: 0x000F, Algorithm: &alg}}
	id := NewSubmissionIdentification(3, "acme", nil, latent)

	assert.Equal(t, "acme v3", id.String())
	assert.Nil(t, id.ExemplarAlgorithmIdentifier)
	require.NotNil(t, id.LatentAlgorithmIdentifier)
	assert.Equal(t, "Latent 1 [owner 0x000F, algorithm 0x0102]", id.LatentAlgorithmIdentifier.String())
}

func TestEFSCloneIsDeep(t *testing.T) {
	dir := uint16(45)
	va := AssessmentLimited
	orig := EFS{
		Impression:        ImpressionLatent,
		FRCT:              FRCTLatentLift,
		ProcessingMethods: []ProcessingMethod{MethodBlackPowder},
		ValueAssessment:   &va,
		Cores:             []Core{{Coordinate: Coordinate{1, 2}, Direction: &dir}},
		Deltas:            []Delta{{Coordinate: Coordinate{3, 4}, Directions: []uint16{10, 20, 30}}},
		Minutiae:          []Minutia{NewMinutia(Coordinate{5, 6}, 7, RidgeEnding)},
	}
	c := orig.Clone()
	require.Equal(t, orig, c)

	c.ProcessingMethods[0] = MethodLaser
	*c.ValueAssessment = AssessmentNoValue
	*c.Cores[0].Direction = 90
	c.Deltas[0].Directions[0] = 0
	c.Minutiae[0].Theta = 0

	assert.Equal(t, MethodBlackPowder, orig.ProcessingMethods[0])
	assert.Equal(t, AssessmentLimited, *orig.ValueAssessment)
	assert.Equal(t, uint16(45), *orig.Cores[0].Direction)
	assert.Equal(t, uint16(10), orig.Deltas[0].Directions[0])
	assert.Equal(t, uint16(7), orig.Minutiae[0].Theta)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "RightAndLeftThumbs", FRGPRightAndLeftThumbs.String())
	assert.Equal(t, "FRGP(99)", FrictionRidgeGeneralizedPosition(99).String())
	assert.True(t, FRGPLeftFour.IsFinger())
	assert.False(t, FRGPLeftThenar.IsFinger())
	assert.Equal(t, "RolledContactlessMoving", ImpressionRolledContactlessMoving.String())
	assert.Equal(t, "OpticalTIRBright", FRCTOpticalTIRBright.String())
	assert.True(t, FRCTLatentLift.IsLatent())
	assert.False(t, FRCTOpticalDirect.IsLatent())
	assert.Equal(t, "Probe", Probe.String())
	assert.Equal(t, "TemplateType(7)", TemplateType(7).String())
}

func TestProcessingMethodCodes(t *testing.T) {
	for m := MethodOther; m <= MethodAlternateLightSource; m++ {
		got, err := ParseProcessingMethod(m.Code())
		require.NoError(t, err, m.String())
		assert.Equal(t, m, got)
	}
	_, err := ParseProcessingMethod("???")
	assert.Error(t, err)
	assert.Equal(t, "BLP", MethodBlackPowder.Code())
	assert.Equal(t, "", ProcessingMethod(200).Code())
}
