package encoding_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastfhir/fhir-r5-go/encoding"
	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/r5"
	"github.com/fastfhir/fhir-r5-go/testdata"
	testassert "github.com/fastfhir/fhir-r5-go/testdata/assert"
)

func TestDecodeEncode(t *testing.T) {
	in := testdata.GetExample("patient-example.json")

	res, err := encoding.Decode(bytes.NewReader(in))
	require.NoError(t, err)
	defer model.Release(res)
	assert.Equal(t, model.TypePatient, res.ResourceType())

	var compact bytes.Buffer
	require.NoError(t, encoding.Encode(&compact, res, encoding.FormatJSON))
	testassert.JSONEqual(t, string(in), compact.String())
	assert.True(t, strings.HasSuffix(compact.String(), "}\n"))
	assert.Contains(t, compact.String(), `<div xmlns=`, "HTML must not be escaped")
	assert.NotContains(t, strings.TrimSuffix(compact.String(), "\n"), "\n")

	var pretty bytes.Buffer
	require.NoError(t, encoding.Encode(&pretty, res, encoding.FormatPrettyJSON))
	assert.Contains(t, pretty.String(), "\n  \"id\": \"example\"")
	testassert.JSONEqual(t, string(in), pretty.String())
}

func TestDecodeErrors(t *testing.T) {
	_, err := encoding.Decode(strings.NewReader(`{"resourceType":"Patient"`))
	assert.True(t, errors.Is(err, model.ErrInvalidJSON), "got %v", err)

	_, err = encoding.Decode(strings.NewReader(`{"resourceType":"Spaceship","id":"x"}`))
	assert.True(t, errors.Is(err, model.ErrNotFound), "got %v", err)
}

func TestDecodeAs(t *testing.T) {
	plan, err := encoding.DecodeAs[*r5.CarePlan](bytes.NewReader(testdata.GetExample("careplan-example.json")))
	require.NoError(t, err)
	defer model.Release(plan)
	assert.Equal(t, "Weight management", plan.Title.Get())

	_, err = encoding.DecodeAs[*r5.Patient](bytes.NewReader(testdata.GetExample("careplan-example.json")))
	assert.True(t, errors.Is(err, model.ErrInvalidJSON), "got %v", err)
}

func TestFormatFromMIME(t *testing.T) {
	for in, want := range map[string]encoding.Format{
		"json":                                 encoding.FormatJSON,
		"application/json":                     encoding.FormatJSON,
		"application/fhir+json":                encoding.FormatJSON,
		"application/fhir+json; charset=utf-8": encoding.FormatJSON,
		"application/fhir+json; pretty=true":   encoding.FormatPrettyJSON,
	} {
		got, err := encoding.FormatFromMIME(in)
		if assert.NoError(t, err, in) {
			assert.Equal(t, want, got, in)
		}
	}

	_, err := encoding.FormatFromMIME("application/fhir+xml")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	p, err := r5.NewPatient("p1")
	require.NoError(t, err)
	defer model.Release(p)

	var buf bytes.Buffer
	err = encoding.Encode(&buf, p, encoding.Format("application/fhir+xml"))
	assert.True(t, errors.Is(err, model.ErrNotFound))
	assert.Zero(t, buf.Len())
}

func TestDecodeLimit(t *testing.T) {
	in := testdata.GetExample("patient-example.json")

	_, err := encoding.DecodeLimit(bytes.NewReader(in), int64(len(in)-1))
	assert.True(t, errors.Is(err, model.ErrOutOfMemory), "got %v", err)

	res, err := encoding.DecodeLimit(bytes.NewReader(in), int64(len(in)))
	require.NoError(t, err)
	model.Release(res)
}
