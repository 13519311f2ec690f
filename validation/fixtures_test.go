package validation

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/jtejido/elft"
)

func TestFixturesConsistent(t *testing.T) {
	assert.NoError(t, CheckFixtures())
}

func TestLatentTable(t *testing.T) {
	sets := Latents()
	require.Len(t, sets, 100)
	for _, s := range sets {
		require.Len(t, s.Images, 1, s.Identifier)
		m := s.Images[0]
		assert.Equal(t, s.Identifier+".gray", m.Filename)
		assert.Equal(t, m.BPC, m.BPP)
		require.NotNil(t, m.EFS)
		assert.Equal(t, elft.ImpressionLatent, m.EFS.Impression)
		assert.Equal(t, elft.FRGPUnknownFinger, m.EFS.FRGP)
		assert.True(t, m.EFS.FRCT.IsLatent(), s.Identifier)
		assert.NotEmpty(t, m.EFS.ProcessingMethods)
		assert.Nil(t, m.EFS.ValueAssessment)
	}

	first := sets[0].Images[0]
	assert.Equal(t, "00002357_2B_X_L01_BP_S24_1200PPI_8BPC_1CH_LP02_1_1207x1131", sets[0].Identifier)
	assert.Equal(t, uint16(1207), first.Width)
	assert.Equal(t, uint16(1131), first.Height)
	assert.Equal(t, uint16(1200), first.PPI)
	assert.Equal(t, []elft.ProcessingMethod{elft.MethodBlackPowder}, first.EFS.ProcessingMethods)
}

func TestReferenceTable(t *testing.T) {
	sets := References()
	require.Len(t, sets, 55)

	images := 0
	for _, s := range sets {
		images += len(s.Images)
		for i, m := range s.Images {
			require.NotNil(t, m.EFS)
			assert.Equal(t, uint8(i), m.EFS.ImageIdentifier)
			require.NotNil(t, m.EFS.ValueAssessment)
			assert.Equal(t, elft.AssessmentValue, *m.EFS.ValueAssessment)
			assert.Equal(t, uint8(8), m.BPP)
			assert.Equal(t, ".gray", filepath.Ext(m.Filename))
		}
	}
	assert.Equal(t, 537, images)

	s, err := Lookup(elft.Reference, "00002644")
	require.NoError(t, err)
	require.Len(t, s.Images, 10)
	assert.Equal(t, "00002644_V_500_roll_01_800x750.gray", s.Images[0].Filename)
	assert.Equal(t, elft.FRGPRightThumb, s.Images[0].EFS.FRGP)
	assert.Equal(t, elft.ImpressionRolledContact, s.Images[0].EFS.Impression)
	assert.Equal(t, elft.FRCTOpticalTIRBright, s.Images[0].EFS.FRCT)
}

func TestTablesAreCopied(t *testing.T) {
	sets := References()
	sets[0].Identifier = "changed"
	sets[0].Images[0].Width = 1
	sets[0].Images[0].EFS.FRGP = elft.FRGPLeftLittle
	*sets[0].Images[0].EFS.ValueAssessment = elft.AssessmentNoValue

	again := References()
	assert.Equal(t, "00002644", again[0].Identifier)
	assert.Equal(t, uint16(800), again[0].Images[0].Width)
	assert.Equal(t, elft.FRGPRightThumb, again[0].Images[0].EFS.FRGP)
	assert.Equal(t, elft.AssessmentValue, *again[0].Images[0].EFS.ValueAssessment)

	latent := Latents()[0]
	latent.Images[0].EFS.ProcessingMethods[0] = elft.MethodLaser
	assert.Equal(t, elft.MethodBlackPowder, Latents()[0].Images[0].EFS.ProcessingMethods[0])
}

func TestLookup(t *testing.T) {
	_, err := Lookup(elft.Probe, "00002644")
	assert.ErrorIs(t, err, ErrUnknownImageSet)

	_, err = Lookup(elft.TemplateType(7), "00002644")
	assert.ErrorIs(t, err, ErrUnknownTemplateType)

	s, err := Lookup(elft.Probe, "00002357_2B_X_L01_BP_S24_1200PPI_8BPC_1CH_LP02_1_1207x1131")
	require.NoError(t, err)
	assert.Len(t, s.Images, 1)

	sets, err := ImageSets(elft.Probe)
	require.NoError(t, err)
	assert.Len(t, sets, 100)
	_, err = ImageSets(elft.TemplateType(7))
	assert.ErrorIs(t, err, ErrUnknownTemplateType)
}

func TestCheckSetsReportsEveryProblem(t *testing.T) {
	bad := []ImageSet{
		reference("dup",
			exemplar("a.gray", 10, 10, 500, elft.ImpressionPlainContact, elft.FRCTUnknown, elft.FRGPRightThumb),
			exemplar("a.gray", 0, 10, 500, elft.ImpressionPlainContact, elft.FRCTUnknown, elft.FRGPRightIndex),
		),
		{Identifier: "dup"},
		latent("deep", 10, 10, 500, 8, elft.FRCTLatentLift),
	}
	bad[2].Images[0].BPP = 12

	err := checkSets(elft.Reference, bad)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 5)
	assert.ErrorContains(t, err, "duplicate file a.gray")
	assert.ErrorContains(t, err, "zero dimensions")
	assert.ErrorContains(t, err, "duplicate image set dup")
	assert.ErrorContains(t, err, "no images")
	assert.ErrorContains(t, err, "12 bits per pixel")
}

func TestTemplateDirs(t *testing.T) {
	dir, err := TemplateDirFor(elft.Probe)
	require.NoError(t, err)
	assert.Equal(t, "templates/latent", dir)

	dir, err = TemplateDirFor(elft.Reference)
	require.NoError(t, err)
	assert.Equal(t, "templates/reference", dir)

	_, err = TemplateDirFor(elft.TemplateType(2))
	assert.ErrorIs(t, err, ErrUnknownTemplateType)

	path, err := TemplatePath("out", elft.Reference, "00002644")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "templates", "reference", "00002644.tmpl"), path)

	_, err = TemplatePath("out", elft.TemplateType(2), "x")
	assert.ErrorIs(t, err, ErrUnknownTemplateType)
}
