package sample

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/rivo/duplo"

	"github.com/jtejido/elft"
)

const templateVersion = 1

var errTemplateVersion = errors.New("unsupported template version")

// template is the CBOR document stored as an opaque elft template.
type template struct {
	Version    uint16            `cbor:"1,keyasint"`
	Type       elft.TemplateType `cbor:"2,keyasint"`
	Identifier string            `cbor:"3,keyasint"`
	Entries    []entry           `cbor:"4,keyasint"`
}

// entry is one hashed image.
type entry struct {
	ImageIdentifier uint8                                 `cbor:"1,keyasint"`
	FRGP            elft.FrictionRidgeGeneralizedPosition `cbor:"2,keyasint"`
	Impression      elft.Impression                       `cbor:"3,keyasint"`
	FRCT            elft.FrictionRidgeCaptureTechnology   `cbor:"4,keyasint"`
	Width           uint16                                `cbor:"5,keyasint"`
	Height          uint16                                `cbor:"6,keyasint"`
	PPI             uint16                                `cbor:"7,keyasint"`
	Hash            duplo.Hash                            `cbor:"8,keyasint"`
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

func encodeTemplate(t *template) ([]byte, error) {
	return encMode.Marshal(t)
}

func decodeTemplate(data []byte) (*template, error) {
	if len(data) == 0 {
		return nil, errors.New("empty template")
	}
	t := new(template)
	if err := cbor.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to decode template: %w", err)
	}
	if t.Version != templateVersion {
		return nil, fmt.Errorf("%w %d", errTemplateVersion, t.Version)
	}
	return t, nil
}

// features describes the entries the way the caller submitted them.
func (t *template) features() []elft.EFS {
	out := make([]elft.EFS, len(t.Entries))
	for i, e := range t.Entries {
		out[i] = elft.EFS{
			ImageIdentifier: e.ImageIdentifier,
			Impression:      e.Impression,
			FRCT:            e.FRCT,
			FRGP:            e.FRGP,
		}
	}
	return out
}
