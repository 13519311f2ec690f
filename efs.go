package elft

import "fmt"

// FrictionRidgeGeneralizedPosition is the ANSI/NIST-ITL finger or palm
// position code of a print.
type FrictionRidgeGeneralizedPosition uint8

const (
	FRGPUnknownFinger          FrictionRidgeGeneralizedPosition = 0
	FRGPRightThumb             FrictionRidgeGeneralizedPosition = 1
	FRGPRightIndex             FrictionRidgeGeneralizedPosition = 2
	FRGPRightMiddle            FrictionRidgeGeneralizedPosition = 3
	FRGPRightRing              FrictionRidgeGeneralizedPosition = 4
	FRGPRightLittle            FrictionRidgeGeneralizedPosition = 5
	FRGPLeftThumb              FrictionRidgeGeneralizedPosition = 6
	FRGPLeftIndex              FrictionRidgeGeneralizedPosition = 7
	FRGPLeftMiddle             FrictionRidgeGeneralizedPosition = 8
	FRGPLeftRing               FrictionRidgeGeneralizedPosition = 9
	FRGPLeftLittle             FrictionRidgeGeneralizedPosition = 10
	FRGPRightFour              FrictionRidgeGeneralizedPosition = 13
	FRGPLeftFour               FrictionRidgeGeneralizedPosition = 14
	FRGPRightAndLeftThumbs     FrictionRidgeGeneralizedPosition = 15
	FRGPRightExtraDigit        FrictionRidgeGeneralizedPosition = 16
	FRGPLeftExtraDigit         FrictionRidgeGeneralizedPosition = 17
	FRGPEJIOrTip               FrictionRidgeGeneralizedPosition = 19
	FRGPUnknownPalm            FrictionRidgeGeneralizedPosition = 20
	FRGPRightFullPalm          FrictionRidgeGeneralizedPosition = 21
	FRGPRightWritersPalm       FrictionRidgeGeneralizedPosition = 22
	FRGPLeftFullPalm           FrictionRidgeGeneralizedPosition = 23
	FRGPLeftWritersPalm        FrictionRidgeGeneralizedPosition = 24
	FRGPRightLowerPalm         FrictionRidgeGeneralizedPosition = 25
	FRGPRightUpperPalm         FrictionRidgeGeneralizedPosition = 26
	FRGPLeftLowerPalm          FrictionRidgeGeneralizedPosition = 27
	FRGPLeftUpperPalm          FrictionRidgeGeneralizedPosition = 28
	FRGPRightPalmOther         FrictionRidgeGeneralizedPosition = 29
	FRGPLeftPalmOther          FrictionRidgeGeneralizedPosition = 30
	FRGPRightInterdigital      FrictionRidgeGeneralizedPosition = 31
	FRGPRightThenar            FrictionRidgeGeneralizedPosition = 32
	FRGPRightHypothenar        FrictionRidgeGeneralizedPosition = 33
	FRGPLeftInterdigital       FrictionRidgeGeneralizedPosition = 34
	FRGPLeftThenar             FrictionRidgeGeneralizedPosition = 35
	FRGPLeftHypothenar         FrictionRidgeGeneralizedPosition = 36
	FRGPRightGrasp             FrictionRidgeGeneralizedPosition = 37
	FRGPLeftGrasp              FrictionRidgeGeneralizedPosition = 38
	FRGPRightCarpalDeltaArea   FrictionRidgeGeneralizedPosition = 81
	FRGPLeftCarpalDeltaArea    FrictionRidgeGeneralizedPosition = 82
	FRGPRightFullPalmAndWriter FrictionRidgeGeneralizedPosition = 83
	FRGPLeftFullPalmAndWriter  FrictionRidgeGeneralizedPosition = 84
	FRGPRightWristBracelet     FrictionRidgeGeneralizedPosition = 85
	FRGPLeftWristBracelet      FrictionRidgeGeneralizedPosition = 86
)

var frgpNames = map[FrictionRidgeGeneralizedPosition]string{
	FRGPUnknownFinger:          "UnknownFinger",
	FRGPRightThumb:             "RightThumb",
	FRGPRightIndex:             "RightIndex",
	FRGPRightMiddle:            "RightMiddle",
	FRGPRightRing:              "RightRing",
	FRGPRightLittle:            "RightLittle",
	FRGPLeftThumb:              "LeftThumb",
	FRGPLeftIndex:              "LeftIndex",
	FRGPLeftMiddle:             "LeftMiddle",
	FRGPLeftRing:               "LeftRing",
	FRGPLeftLittle:             "LeftLittle",
	FRGPRightFour:              "RightFour",
	FRGPLeftFour:               "LeftFour",
	FRGPRightAndLeftThumbs:     "RightAndLeftThumbs",
	FRGPRightExtraDigit:        "RightExtraDigit",
	FRGPLeftExtraDigit:         "LeftExtraDigit",
	FRGPEJIOrTip:               "EJIOrTip",
	FRGPUnknownPalm:            "UnknownPalm",
	FRGPRightFullPalm:          "RightFullPalm",
	FRGPRightWritersPalm:       "RightWritersPalm",
	FRGPLeftFullPalm:           "LeftFullPalm",
	FRGPLeftWritersPalm:        "LeftWritersPalm",
	FRGPRightLowerPalm:         "RightLowerPalm",
	FRGPRightUpperPalm:         "RightUpperPalm",
	FRGPLeftLowerPalm:          "LeftLowerPalm",
	FRGPLeftUpperPalm:          "LeftUpperPalm",
	FRGPRightPalmOther:         "RightPalmOther",
	FRGPLeftPalmOther:          "LeftPalmOther",
	FRGPRightInterdigital:      "RightInterdigital",
	FRGPRightThenar:            "RightThenar",
	FRGPRightHypothenar:        "RightHypothenar",
	FRGPLeftInterdigital:       "LeftInterdigital",
	FRGPLeftThenar:             "LeftThenar",
	FRGPLeftHypothenar:         "LeftHypothenar",
	FRGPRightGrasp:             "RightGrasp",
	FRGPLeftGrasp:              "LeftGrasp",
	FRGPRightCarpalDeltaArea:   "RightCarpalDeltaArea",
	FRGPLeftCarpalDeltaArea:    "LeftCarpalDeltaArea",
	FRGPRightFullPalmAndWriter: "RightFullPalmAndWriter",
	FRGPLeftFullPalmAndWriter:  "LeftFullPalmAndWriter",
	FRGPRightWristBracelet:     "RightWristBracelet",
	FRGPLeftWristBracelet:      "LeftWristBracelet",
}

func (p FrictionRidgeGeneralizedPosition) String() string {
	if name, ok := frgpNames[p]; ok {
		return name
	}
	return fmt.Sprintf("FRGP(%d)", uint8(p))
}

// IsFinger reports whether p names a single finger or a slap of fingers.
func (p FrictionRidgeGeneralizedPosition) IsFinger() bool {
	return p <= FRGPEJIOrTip
}

// Impression is the ANSI/NIST-ITL impression type of a print.
type Impression uint8

const (
	ImpressionPlainContact                Impression = 0
	ImpressionRolledContact               Impression = 1
	ImpressionLatent                      Impression = 4
	ImpressionLiveScanSwipe               Impression = 8
	ImpressionPlainContactlessStationary  Impression = 24
	ImpressionRolledContactlessStationary Impression = 25
	ImpressionOther                       Impression = 28
	ImpressionUnknown                     Impression = 29
	ImpressionRolledContactlessMoving     Impression = 41
	ImpressionPlainContactlessMoving      Impression = 42
)

var impressionNames = map[Impression]string{
	ImpressionPlainContact:                "PlainContact",
	ImpressionRolledContact:               "RolledContact",
	ImpressionLatent:                      "Latent",
	ImpressionLiveScanSwipe:               "LiveScanSwipe",
	ImpressionPlainContactlessStationary:  "PlainContactlessStationary",
	ImpressionRolledContactlessStationary: "RolledContactlessStationary",
	ImpressionOther:                       "Other",
	ImpressionUnknown:                     "Unknown",
	ImpressionRolledContactlessMoving:     "RolledContactlessMoving",
	ImpressionPlainContactlessMoving:      "PlainContactlessMoving",
}

func (i Impression) String() string {
	if name, ok := impressionNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Impression(%d)", uint8(i))
}

// FrictionRidgeCaptureTechnology describes how a print was captured.
type FrictionRidgeCaptureTechnology uint8

const (
	FRCTUnknown FrictionRidgeCaptureTechnology = iota
	FRCTOther
	FRCTScannedInkOnPaper
	FRCTOpticalTIRBright
	FRCTOpticalTIRDark
	FRCTOpticalDirect
	FRCTOpticalLowFrequency3DMapped
	FRCTOpticalHighFrequency3DMapped
	FRCTCapacitive
	FRCTCapacitiveRF
	FRCTElectroluminescent
	FRCTReflectedUltrasonic
	FRCTUltrasonicImpediography
	FRCTThermal
	FRCTDirectPressureSensitive
	FRCTIndirectPressure
	FRCTLiveTape
	FRCTLatentImpression
	FRCTLatentPhoto
	FRCTLatentMold
	FRCTLatentTracing
	FRCTLatentLift
)

var frctNames = [...]string{
	"Unknown", "Other", "ScannedInkOnPaper", "OpticalTIRBright",
	"OpticalTIRDark", "OpticalDirect", "OpticalLowFrequency3DMapped",
	"OpticalHighFrequency3DMapped", "Capacitive", "CapacitiveRF",
	"Electroluminescent", "ReflectedUltrasonic", "UltrasonicImpediography",
	"Thermal", "DirectPressureSensitive", "IndirectPressure", "LiveTape",
	"LatentImpression", "LatentPhoto", "LatentMold", "LatentTracing",
	"LatentLift",
}

func (t FrictionRidgeCaptureTechnology) String() string {
	if int(t) < len(frctNames) {
		return frctNames[t]
	}
	return fmt.Sprintf("FRCT(%d)", uint8(t))
}

// IsLatent reports whether the technology describes a latent capture.
func (t FrictionRidgeCaptureTechnology) IsLatent() bool {
	return t >= FRCTLatentImpression && t <= FRCTLatentLift
}

// ProcessingMethod is a chemical or physical method used to develop a latent.
type ProcessingMethod uint8

const (
	MethodOther ProcessingMethod = iota
	MethodAmidoBlack
	MethodArdrox
	MethodBasicYellow
	MethodBlackPowder
	MethodCyanoacrylate
	MethodDFO
	MethodFluorescentPowder
	MethodGentianViolet
	MethodIndanedione
	MethodIodine
	MethodLaser
	MethodLeucoCrystalViolet
	MethodMagneticPowder
	MethodNinhydrin
	MethodPhysicalDeveloper
	MethodRAM
	MethodRhodamine6G
	MethodSmallParticleReagent
	MethodStickysidePowder
	MethodSudanBlack
	MethodUltraviolet
	MethodVisual
	MethodWhitePowder
	MethodZincChloride
	MethodAlternateLightSource
)

// processingCodes are the three letter EFS codes of each method.
var processingCodes = [...]string{
	"OTH", "AMB", "ARD", "BY4", "BLP", "CYA", "DFO", "FLP", "GEN", "IND",
	"IOD", "LSR", "LCV", "MBP", "NIN", "PDV", "RAM", "R6G", "SPR", "SSP",
	"SDB", "UV2", "VIS", "WHP", "ZNC", "ALS",
}

var processingNames = [...]string{
	"Other", "AmidoBlack", "Ardrox", "BasicYellow", "BlackPowder",
	"Cyanoacrylate", "DFO", "FluorescentPowder", "GentianViolet",
	"Indanedione", "Iodine", "Laser", "LeucoCrystalViolet", "MagneticPowder",
	"Ninhydrin", "PhysicalDeveloper", "RAM", "Rhodamine6G",
	"SmallParticleReagent", "StickysidePowder", "SudanBlack", "Ultraviolet",
	"Visual", "WhitePowder", "ZincChloride", "AlternateLightSource",
}

func (m ProcessingMethod) String() string {
	if int(m) < len(processingNames) {
		return processingNames[m]
	}
	return fmt.Sprintf("ProcessingMethod(%d)", uint8(m))
}

// Code returns the EFS code of the method, or "" if m is out of range.
func (m ProcessingMethod) Code() string {
	if int(m) < len(processingCodes) {
		return processingCodes[m]
	}
	return ""
}

// ParseProcessingMethod returns the method with the given EFS code.
func ParseProcessingMethod(code string) (ProcessingMethod, error) {
	for i, c := range processingCodes {
		if c == code {
			return ProcessingMethod(i), nil
		}
	}
	return MethodOther, fmt.Errorf("unknown processing method code %q", code)
}

// ValueAssessment is an examiner's opinion of the utility of a print.
type ValueAssessment uint8

const (
	AssessmentValue ValueAssessment = iota
	AssessmentLimited
	AssessmentNoValue
	AssessmentNonPrint
)

func (v ValueAssessment) String() string {
	switch v {
	case AssessmentValue:
		return "Value"
	case AssessmentLimited:
		return "Limited"
	case AssessmentNoValue:
		return "NoValue"
	case AssessmentNonPrint:
		return "NonPrint"
	}
	return fmt.Sprintf("ValueAssessment(%d)", uint8(v))
}

// Orientation is the deviation of a print from upright, in degrees.
type Orientation struct {
	Direction   int16
	Uncertainty uint8
}

// Core is a core point with an optional direction in degrees.
type Core struct {
	Coordinate Coordinate
	Direction  *uint16
}

// Delta is a delta point with up to three directions in degrees.
type Delta struct {
	Coordinate Coordinate
	Directions []uint16
}

// EFS is the extended feature set of a single print: capture context plus
// any features an examiner or algorithm marked on it.
type EFS struct {
	// ImageIdentifier links the features to an Image.Identifier.
	ImageIdentifier uint8

	Impression Impression
	FRCT       FrictionRidgeCaptureTechnology
	FRGP       FrictionRidgeGeneralizedPosition

	Orientation       *Orientation
	ProcessingMethods []ProcessingMethod
	ValueAssessment   *ValueAssessment

	Cores    []Core
	Deltas   []Delta
	Minutiae []Minutia
}

// Clone returns a deep copy of e.
func (e EFS) Clone() EFS {
	c := e
	if e.Orientation != nil {
		o := *e.Orientation
		c.Orientation = &o
	}
	if e.ValueAssessment != nil {
		v := *e.ValueAssessment
		c.ValueAssessment = &v
	}
	c.ProcessingMethods = append([]ProcessingMethod(nil), e.ProcessingMethods...)
	c.Minutiae = append([]Minutia(nil), e.Minutiae...)
	if e.Cores != nil {
		c.Cores = make([]Core, len(e.Cores))
		for i, core := range e.Cores {
			c.Cores[i] = core
			if core.Direction != nil {
				d := *core.Direction
				c.Cores[i].Direction = &d
			}
		}
	}
	if e.Deltas != nil {
		c.Deltas = make([]Delta, len(e.Deltas))
		for i, delta := range e.Deltas {
			c.Deltas[i] = Delta{
				Coordinate: delta.Coordinate,
				Directions: append([]uint16(nil), delta.Directions...),
			}
		}
	}
	return c
}
