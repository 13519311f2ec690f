package sample

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/rivo/duplo"

	"github.com/jtejido/elft"
)

const (
	storeFile    = "store.gob"
	manifestFile = "manifest.cbor"
)

// manifest maps duplo store ids, which are indexes into Entries, back to
// reference templates.
type manifest struct {
	Version    uint16          `cbor:"1,keyasint"`
	Created    time.Time       `cbor:"2,keyasint"`
	References int             `cbor:"3,keyasint"`
	Entries    []manifestEntry `cbor:"4,keyasint"`
}

type manifestEntry struct {
	Identifier      string                                `cbor:"1,keyasint"`
	ImageIdentifier uint8                                 `cbor:"2,keyasint"`
	FRGP            elft.FrictionRidgeGeneralizedPosition `cbor:"3,keyasint"`
}

// CreateReferenceDatabase hashes every reference template into a duplo
// store and writes it with its manifest to databaseDir.
func (e *Extractor) CreateReferenceDatabase(ctx context.Context, references elft.TemplateReader, databaseDir string,
	maxSize uint64) elft.ReturnStatus {
	store := duplo.New()
	m := manifest{Version: templateVersion, Created: time.Now().UTC()}

	for _, id := range references.Identifiers() {
		if err := ctx.Err(); err != nil {
			return elft.StatusFailure("%v", err)
		}
		data, err := references.Read(id)
		if err != nil {
			return elft.StatusFailure("failed to read %s: %v", id, err)
		}
		t, err := decodeTemplate(data)
		if err != nil {
			return elft.StatusFailure("%s: %v", id, err)
		}
		if t.Type != elft.Reference {
			return elft.StatusFailure("%s is a %s template", id, t.Type)
		}
		for _, en := range t.Entries {
			store.Add(len(m.Entries), en.Hash)
			m.Entries = append(m.Entries, manifestEntry{Identifier: id, ImageIdentifier: en.ImageIdentifier, FRGP: en.FRGP})
		}
		m.References++
	}

	var storeBuf bytes.Buffer
	if err := gob.NewEncoder(&storeBuf).Encode(store); err != nil {
		return elft.StatusFailure("failed to encode store: %v", err)
	}
	manifestData, err := encMode.Marshal(&m)
	if err != nil {
		return elft.StatusFailure("failed to encode manifest: %v", err)
	}
	if size := uint64(storeBuf.Len() + len(manifestData)); size > maxSize {
		return elft.StatusFailure("database needs %d bytes, limit is %d", size, maxSize)
	}

	if err := os.MkdirAll(databaseDir, 0755); err != nil {
		return elft.StatusFailure("%v", err)
	}
	if err := os.WriteFile(filepath.Join(databaseDir, storeFile), storeBuf.Bytes(), 0644); err != nil {
		return elft.StatusFailure("failed to write store: %v", err)
	}
	if err := os.WriteFile(filepath.Join(databaseDir, manifestFile), manifestData, 0644); err != nil {
		return elft.StatusFailure("failed to write manifest: %v", err)
	}
	return elft.StatusOK()
}

// readDatabase loads what CreateReferenceDatabase wrote, refusing databases
// larger than maxSize.
func readDatabase(databaseDir string, maxSize uint64) (*duplo.Store, *manifest, error) {
	storePath := filepath.Join(databaseDir, storeFile)
	manifestPath := filepath.Join(databaseDir, manifestFile)

	var size uint64
	for _, p := range []string{storePath, manifestPath} {
		st, err := os.Stat(p)
		if err != nil {
			return nil, nil, err
		}
		size += uint64(st.Size())
	}
	if size > maxSize {
		return nil, nil, fmt.Errorf("database is %d bytes, limit is %d", size, maxSize)
	}

	manifestData, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, nil, err
	}
	m := new(manifest)
	if err := cbor.Unmarshal(manifestData, m); err != nil {
		return nil, nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	if m.Version != templateVersion {
		return nil, nil, fmt.Errorf("%w %d", errTemplateVersion, m.Version)
	}

	f, err := os.Open(storePath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	store := duplo.New()
	if err := gob.NewDecoder(f).Decode(store); err != nil {
		return nil, nil, fmt.Errorf("failed to decode store: %w", err)
	}
	return store, m, nil
}
