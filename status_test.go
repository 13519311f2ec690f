package elft

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnStatusBool(t *testing.T) {
	assert.True(t, ReturnStatus{Result: Success}.OK())
	assert.True(t, ReturnStatus{Result: Success, Message: "with a note"}.OK())

	for _, r := range []Result{Failure, NotImplemented, Result(3), Result(255)} {
		assert.False(t, ReturnStatus{Result: r}.OK(), r.String())
	}
}

func TestReturnStatusErr(t *testing.T) {
	assert.NoError(t, StatusOK().Err())

	err := StatusFailure("bad image %d", 4).Err()
	require.Error(t, err)
	assert.Equal(t, "implementation returned Failure: bad image 4", err.Error())
	assert.False(t, IsNotImplemented(err))

	wrapped := fmt.Errorf("search: %w", StatusNotImplemented("no correspondence").Err())
	assert.True(t, IsNotImplemented(wrapped))

	var se *StatusError
	require.True(t, errors.As(wrapped, &se))
	assert.Equal(t, NotImplemented, se.Status.Result)
}

type stubExtractor struct{ Extractor }
type stubSearcher struct{ Searcher }

func (stubSearcher) Load(context.Context, uint64) ReturnStatus { return StatusOK() }

func TestRegistry(t *testing.T) {
	const name = "registry-test"
	defer unregister(name)

	RegisterExtractor(name, func(configDir string) (Extractor, error) {
		return stubExtractor{}, nil
	})
	RegisterSearcher(name, func(configDir, databaseDir string) (Searcher, error) {
		if databaseDir == "" {
			return nil, errors.New("no database")
		}
		return stubSearcher{}, nil
	})

	assert.Contains(t, Implementations(), name)

	e, err := NewExtractor(name, "config")
	require.NoError(t, err)
	assert.IsType(t, stubExtractor{}, e)

	s, err := NewSearcher(name, "config", "db")
	require.NoError(t, err)
	assert.True(t, s.Load(context.Background(), 0).OK())

	_, err = NewSearcher(name, "config", "")
	assert.ErrorContains(t, err, "no database")

	_, err = NewExtractor("missing", "")
	assert.ErrorIs(t, err, ErrUnknownImplementation)

	assert.Panics(t, func() {
		RegisterExtractor(name, func(string) (Extractor, error) { return nil, nil })
	})
	assert.Panics(t, func() { RegisterSearcher("other", nil) })
}
