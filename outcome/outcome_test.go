package outcome_test

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/r5"
	"github.com/fastfhir/fhir-r5-go/outcome"
)

func TestBuild(t *testing.T) {
	oo := outcome.Build(r5.IssueSeverityError, r5.IssueTypeRequired, "missing status", "CarePlan.status")
	defer model.Release(oo)

	require.NoError(t, model.Validate(oo))
	require.Len(t, oo.Issue, 1)
	assert.Equal(t, "missing status", oo.Issue[0].Diagnostics.Get())
	assert.Equal(t, "CarePlan.status", oo.Issue[0].Expression[0].Get())

	other := outcome.Build(r5.IssueSeverityError, r5.IssueTypeRequired, "missing status")
	defer model.Release(other)
	assert.NotEqual(t, oo.ID(), other.ID(), "ids must be unique")
}

func TestError(t *testing.T) {
	err := outcome.Error(r5.IssueSeverityFatal, r5.IssueTypeProcessing, "error parsing json body")

	var oo *r5.OperationOutcome
	require.True(t, errors.As(err, &oo))
	assert.Equal(t, r5.IssueSeverityFatal, oo.Issue[0].Severity)
	assert.Contains(t, err.Error(), `"diagnostics": "error parsing json body"`)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		severity   r5.IssueSeverity
		code       r5.IssueType
		expression []string
	}{
		{
			name:     "invalid json",
			err:      model.NewError(model.KindInvalidJSON, "", "unexpected end of input"),
			severity: r5.IssueSeverityError,
			code:     r5.IssueTypeStructure,
		},
		{
			name:       "validation failed",
			err:        errors.Wrap(model.NewError(model.KindValidationFailed, "subject", "required"), "validate"),
			severity:   r5.IssueSeverityError,
			code:       r5.IssueTypeRequired,
			expression: []string{"subject"},
		},
		{
			name:       "invalid argument",
			err:        model.NewError(model.KindInvalidArgument, "id", "bad id"),
			severity:   r5.IssueSeverityError,
			code:       r5.IssueTypeInvalid,
			expression: []string{"id"},
		},
		{
			name:       "not found",
			err:        model.NewError(model.KindNotFound, "resourceType", "unknown"),
			severity:   r5.IssueSeverityError,
			code:       r5.IssueTypeNotSupported,
			expression: []string{"resourceType"},
		},
		{
			name:     "out of memory",
			err:      model.NewError(model.KindOutOfMemory, "", "too large"),
			severity: r5.IssueSeverityFatal,
			code:     r5.IssueTypeException,
		},
		{
			name:     "foreign error",
			err:      errors.New("disk on fire"),
			severity: r5.IssueSeverityFatal,
			code:     r5.IssueTypeException,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oo := outcome.FromError(tt.err)
			require.NotNil(t, oo)
			require.Len(t, oo.Issue, 1)

			issue := oo.Issue[0]
			assert.Equal(t, tt.severity, issue.Severity)
			assert.Equal(t, tt.code, issue.Code)
			assert.Equal(t, tt.err.Error(), issue.Diagnostics.Get())

			var expression []string
			for _, e := range issue.Expression {
				expression = append(expression, e.Get())
			}
			assert.Equal(t, tt.expression, expression)
		})
	}

	assert.Nil(t, outcome.FromError(nil))
}

func TestFromErrorKeepsOutcome(t *testing.T) {
	oo := outcome.Build(r5.IssueSeverityWarning, r5.IssueTypeInformational, "note")
	wrapped := errors.Wrap(oo, "request failed")

	assert.Same(t, oo, outcome.FromError(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	type issue struct {
		severity r5.IssueSeverity
		code     r5.IssueType
	}
	tests := []struct {
		name   string
		issues []issue
		want   int
	}{
		{"no issues", nil, http.StatusBadRequest},
		{"not found", []issue{{r5.IssueSeverityError, r5.IssueTypeNotFound}}, http.StatusNotFound},
		{"fatal wins", []issue{
			{r5.IssueSeverityError, r5.IssueTypeNotFound},
			{r5.IssueSeverityFatal, r5.IssueTypeException},
		}, http.StatusInternalServerError},
		{"same severity falls back to class", []issue{
			{r5.IssueSeverityError, r5.IssueTypeNotFound},
			{r5.IssueSeverityError, r5.IssueTypeConflict},
		}, http.StatusBadRequest},
		{"unknown severity skipped", []issue{
			{r5.IssueSeveritySuccess, r5.IssueTypeTimeout},
			{r5.IssueSeverityWarning, r5.IssueTypeThrottled},
		}, http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oo, err := r5.NewOperationOutcome("oo")
			require.NoError(t, err)
			for _, i := range tt.issues {
				oo.AddIssue(i.severity, i.code, "")
			}
			assert.Equal(t, tt.want, outcome.HTTPStatus(oo))
		})
	}
}

func TestRemoveIssue(t *testing.T) {
	oo := outcome.Build(r5.IssueSeverityError, r5.IssueTypeRequired, "first")
	defer model.Release(oo)
	oo.AddIssue(r5.IssueSeverityWarning, r5.IssueTypeInformational, "second")

	require.NoError(t, oo.RemoveIssue(0))
	require.Len(t, oo.Issue, 1)
	assert.Equal(t, "second", oo.Issue[0].Diagnostics.Get())
	assert.False(t, oo.HasErrors())
	assert.ErrorIs(t, oo.RemoveIssue(1), model.ErrInvalidArgument)
}
