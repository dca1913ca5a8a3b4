// Package outcome converts errors into OperationOutcome resources.
package outcome

import (
	"errors"
	"net/http"
	"slices"

	"github.com/google/uuid"

	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/r5"
)

// Build constructs an OperationOutcome with a single issue and a random id.
func Build(severity r5.IssueSeverity, code r5.IssueType, diagnostics string, expression ...string) *r5.OperationOutcome {
	oo, err := r5.NewOperationOutcome(uuid.NewString())
	if err != nil {
		// uuids always satisfy the id grammar
		panic(err)
	}
	return oo.AddIssue(severity, code, diagnostics, expression...)
}

// Error creates an error value backed by an OperationOutcome.
func Error(severity r5.IssueSeverity, code r5.IssueType, diagnostics string) error {
	return Build(severity, code, diagnostics)
}

var kindToIssue = map[model.Kind]struct {
	severity r5.IssueSeverity
	code     r5.IssueType
}{
	model.KindInvalidJSON:      {r5.IssueSeverityError, r5.IssueTypeStructure},
	model.KindInvalidArgument:  {r5.IssueSeverityError, r5.IssueTypeInvalid},
	model.KindValidationFailed: {r5.IssueSeverityError, r5.IssueTypeRequired},
	model.KindNotFound:         {r5.IssueSeverityError, r5.IssueTypeNotSupported},
	model.KindOutOfMemory:      {r5.IssueSeverityFatal, r5.IssueTypeException},
}

// FromError returns err as an OperationOutcome. An OperationOutcome in the
// chain of err is returned as is; model errors are mapped by kind with the
// offending field as expression; anything else is a fatal exception.
// FromError(nil) is nil.
func FromError(err error) *r5.OperationOutcome {
	if err == nil {
		return nil
	}
	var oo *r5.OperationOutcome
	if errors.As(err, &oo) {
		return oo
	}

	var me *model.Error
	if errors.As(err, &me) {
		issue, ok := kindToIssue[me.Kind]
		if !ok {
			issue.severity, issue.code = r5.IssueSeverityError, r5.IssueTypeProcessing
		}
		var expression []string
		if me.Field != "" {
			expression = append(expression, me.Field)
		}
		return Build(issue.severity, issue.code, err.Error(), expression...)
	}

	return Build(r5.IssueSeverityFatal, r5.IssueTypeException, err.Error())
}

var issueCodeToHTTPStatus = map[r5.IssueType]int{
	// invalid content
	r5.IssueTypeInvalid:   http.StatusBadRequest,
	r5.IssueTypeStructure: http.StatusBadRequest,
	r5.IssueTypeRequired:  http.StatusBadRequest,
	r5.IssueTypeValue:     http.StatusBadRequest,
	r5.IssueTypeInvariant: http.StatusBadRequest,

	// security problem
	r5.IssueTypeSecurity:   http.StatusForbidden,
	r5.IssueTypeLogin:      http.StatusUnauthorized,
	r5.IssueTypeUnknown:    http.StatusUnauthorized,
	r5.IssueTypeExpired:    http.StatusUnauthorized,
	r5.IssueTypeForbidden:  http.StatusForbidden,
	r5.IssueTypeSuppressed: http.StatusForbidden,

	// processing failure
	r5.IssueTypeProcessing:      http.StatusBadRequest,
	r5.IssueTypeNotSupported:    http.StatusNotImplemented,
	r5.IssueTypeDuplicate:       http.StatusConflict,
	r5.IssueTypeMultipleMatches: http.StatusBadRequest,
	r5.IssueTypeNotFound:        http.StatusNotFound,
	r5.IssueTypeDeleted:         http.StatusGone,
	r5.IssueTypeTooLong:         http.StatusRequestEntityTooLarge,
	r5.IssueTypeCodeInvalid:     http.StatusBadRequest,
	r5.IssueTypeExtension:       http.StatusBadRequest,
	r5.IssueTypeTooCostly:       http.StatusForbidden,
	r5.IssueTypeBusinessRule:    http.StatusBadRequest,
	r5.IssueTypeConflict:        http.StatusConflict,

	// transient issue
	r5.IssueTypeTransient:  http.StatusServiceUnavailable,
	r5.IssueTypeLockError:  http.StatusServiceUnavailable,
	r5.IssueTypeNoStore:    http.StatusServiceUnavailable,
	r5.IssueTypeException:  http.StatusInternalServerError,
	r5.IssueTypeTimeout:    http.StatusGatewayTimeout,
	r5.IssueTypeIncomplete: http.StatusServiceUnavailable,
	r5.IssueTypeThrottled:  http.StatusTooManyRequests,
}

var severityRank = map[r5.IssueSeverity]int{
	r5.IssueSeverityFatal:       3,
	r5.IssueSeverityError:       2,
	r5.IssueSeverityWarning:     1,
	r5.IssueSeverityInformation: 0,
}

// HTTPStatus picks the status code for an outcome from its most severe
// issues. Issues of equal severity with different codes fall back to the
// class of the highest one, e.g. 400 for 400 and 404.
func HTTPStatus(oo *r5.OperationOutcome) int {
	highestSeverity := -1
	highestStatusCodes := []int{http.StatusBadRequest}

	for _, issue := range oo.Issue {
		severityValue, ok := severityRank[issue.Severity]
		if !ok {
			continue
		}
		statusCode, ok := issueCodeToHTTPStatus[issue.Code]
		if !ok {
			continue
		}

		if severityValue > highestSeverity {
			highestSeverity = severityValue
			highestStatusCodes = []int{statusCode}
		} else if severityValue == highestSeverity {
			highestStatusCodes = append(highestStatusCodes, statusCode)
		}
	}

	if len(highestStatusCodes) == 1 {
		return highestStatusCodes[0]
	}
	return (slices.Max(highestStatusCodes) / 100) * 100
}
