package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"witt-interpreter-be/internal/entity"
)

func TestMergeCitations(t *testing.T) {
	existing := []entity.Citation{
		{Id: "witt-0", Text: "original", Origin: entity.OriginPrimary},
		{Id: "witt-1", Origin: entity.OriginPrimary},
	}

	merged := MergeCitations(existing, []entity.Citation{
		{Id: "witt-1", Text: "replacement attempt"},
		{Id: "trans-0", Origin: entity.OriginSecondary},
	})

	assert.Len(t, merged, 3)
	// First occurrence wins; order is preserved.
	assert.Equal(t, "witt-0", merged[0].Id)
	assert.Equal(t, "", merged[1].Text)
	assert.Equal(t, "trans-0", merged[2].Id)

	// Input slices are not mutated.
	assert.Len(t, existing, 2)
}

func TestMergeCitationsEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeCitations(nil, nil))

	only := MergeCitations(nil, []entity.Citation{{Id: "witt-0"}})
	assert.Len(t, only, 1)
}

func TestReplaceFramework(t *testing.T) {
	results := []entity.FrameworkResult{
		{Id: "early", Status: entity.JobLoading},
		{Id: "later", Status: entity.JobLoading},
	}

	out := ReplaceFramework(results, entity.FrameworkResult{Id: "later", Status: entity.JobComplete, Interpretation: "done"})

	assert.Equal(t, entity.JobLoading, out[0].Status)
	assert.Equal(t, entity.JobComplete, out[1].Status)
	assert.Equal(t, "done", out[1].Interpretation)

	// Original slice untouched.
	assert.Equal(t, entity.JobLoading, results[1].Status)
}

func TestReplaceFrameworkUnknownId(t *testing.T) {
	results := []entity.FrameworkResult{{Id: "early", Status: entity.JobLoading}}
	out := ReplaceFramework(results, entity.FrameworkResult{Id: "missing", Status: entity.JobComplete})
	assert.Equal(t, results, out)
}

func TestSplitByOrigin(t *testing.T) {
	citations := []entity.Citation{
		{Id: "witt-0", Origin: entity.OriginPrimary},
		{Id: "trans-0", Origin: entity.OriginSecondary},
		{Id: "witt-1", Origin: entity.OriginPrimary},
	}

	primary, secondary := SplitByOrigin(citations)
	assert.Len(t, primary, 2)
	assert.Len(t, secondary, 1)
	assert.Equal(t, "trans-0", secondary[0].Id)
}
