package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastfhir/fhir-r5-go/internal/cli"
	"github.com/fastfhir/fhir-r5-go/testdata"
	testassert "github.com/fastfhir/fhir-r5-go/testdata/assert"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "disabled"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestParse(t *testing.T) {
	in := testdata.GetExample("careplan-example.json")
	path := writeFile(t, "careplan.json", in)

	out, err := run(t, "", "parse", path)
	require.NoError(t, err)
	testassert.JSONEqual(t, string(in), out)

	out, err = run(t, string(in), "parse", "--pretty", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  \"resourceType\": \"CarePlan\"")
}

func TestParseErrors(t *testing.T) {
	_, err := run(t, `{"resourceType":"Patient"`, "parse", "-")
	assert.Error(t, err)

	_, err = run(t, "", "parse", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = run(t, `{"resourceType":"RiskAssessment","id":"r1","status":"final","prediction":[{"probabilityDecimal":101}]}`,
		"parse", "--validate", "-")
	assert.ErrorContains(t, err, "probability")

	_, err = run(t, string(testdata.GetExample("patient-example.json")), "--max-body-size", "16", "parse", "-")
	assert.ErrorContains(t, err, "exceeds 16 bytes")
}

func TestValidate(t *testing.T) {
	good := writeFile(t, "patient.json", testdata.GetExample("patient-example.json"))
	bad := writeFile(t, "careplan.json", []byte(`{"resourceType":"CarePlan","id":"c1","status":"maybe","intent":"plan"}`))

	out, err := run(t, "", "validate", good)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "", "validate", good, bad)
	assert.EqualError(t, err, "1 of 2 resources failed validation")

	var oo map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &oo))
	assert.Equal(t, "OperationOutcome", oo["resourceType"])
	issue := oo["issue"].([]any)[0].(map[string]any)
	assert.Equal(t, "error", issue["severity"])
	assert.Equal(t, "required", issue["code"])
	assert.Contains(t, issue["diagnostics"], bad)
	assert.Equal(t, []any{"status"}, issue["expression"])
}

func TestValidateUnknownType(t *testing.T) {
	out, err := run(t, `{"resourceType":"Spaceship","id":"s1"}`, "validate", "-")
	assert.Error(t, err)
	assert.Contains(t, out, `"code":"not-supported"`)
}

func TestNew(t *testing.T) {
	for _, name := range []string{"CarePlan", "care-plan", "care_plan", "careplan", "CAREPLAN"} {
		out, err := run(t, "", "new", name, "--id", "cp1")
		require.NoError(t, err, name)
		testassert.JSONEqual(t, `{"resourceType":"CarePlan","id":"cp1","status":"draft","intent":"plan"}`, out)
	}

	out, err := run(t, "", "new", "patient", "--assign-id")
	require.NoError(t, err)
	var p struct{ ID string }
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	_, err = uuid.Parse(p.ID)
	assert.NoError(t, err, "id %q", p.ID)
}

func TestNewErrors(t *testing.T) {
	_, err := run(t, "", "new", "spaceship", "--id", "s1")
	assert.ErrorContains(t, err, "unknown resource type")

	_, err = run(t, "", "new", "Patient", "--id", "not valid")
	assert.Error(t, err)

	_, err = run(t, "", "new", "Patient")
	assert.Error(t, err)

	_, err = run(t, "", "new", "Patient", "--id", "p1", "--assign-id")
	assert.Error(t, err)
}

func TestTypes(t *testing.T) {
	out, err := run(t, "", "types")
	require.NoError(t, err)
	names := strings.Fields(out)
	assert.Contains(t, names, "Patient")
	assert.Contains(t, names, "RiskAssessment")
	assert.IsIncreasing(t, names)

	out, err = run(t, "", "types", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "* PractitionerRole\n")
	assert.Contains(t, out, "  Observation\n")
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "", "--log-format", "xml", "types")
	assert.ErrorContains(t, err, "invalid config")
}
