package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batchJSON = `[
  {"first_name":"John","birth_date":"1990-06-15","mobile":"021 123 4567",
   "street":"123 Main Street","suburb":"Central City","postcode":"12345","country":"New Zealand"},
  {"first_name":"---","birth_date":"2024-06-16","mobile":"123456789",
   "street":"1 Queen St","suburb":"Auckland","postcode":"1010","country":"NZ"}
]`

func decodeResults(t *testing.T, out string) []entryResult {
	t.Helper()
	var results []entryResult
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var r entryResult
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		results = append(results, r)
	}
	return results
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"REGCHECK_LOG_LEVEL", "REGCHECK_FORMAT", "REGCHECK_TODAY"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestRun_MixedBatch(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-today", "2024-06-15", "-log-level", "error"}, strings.NewReader(batchJSON), &stdout, &stderr)
	assert.Equal(t, exitRejected, code)

	results := decodeResults(t, stdout.String())
	require.Len(t, results, 2)

	assert.Equal(t, "accepted", results[0].Status)
	require.NotNil(t, results[0].Registration)
	assert.Equal(t, "021 123 4567", results[0].Registration.Mobile)
	assert.Equal(t, "123 Main Street, Central City, 12345, New Zealand", results[0].Registration.Address)

	assert.Equal(t, "rejected", results[1].Status)
	require.Len(t, results[1].Errors, 3)
	assert.Equal(t, "first_name", results[1].Errors[0].Param)
	assert.Equal(t, "birth_date", results[1].Errors[1].Param)
	assert.Equal(t, "mobile", results[1].Errors[2].Param)
	for _, e := range results[1].Errors {
		assert.Equal(t, "invalid_argument", e.Code)
	}
}

func TestRun_YAMLFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "batch.yaml")
	yamlBatch := `
- first_name: Mary Jane
  birth_date: "1985-01-31"
  mobile: 027-987-6543
  street: 1 Queen St
  suburb: Auckland
  postcode: "1010"
  country: New Zealand
`
	require.NoError(t, os.WriteFile(path, []byte(yamlBatch), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-input", path, "-format", "yaml", "-today", "2024-06-15"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, exitOK, code)

	results := decodeResults(t, stdout.String())
	require.Len(t, results, 1)
	assert.Equal(t, "accepted", results[0].Status)
	assert.Equal(t, "027 987 6543", results[0].Registration.Mobile)
	assert.Contains(t, stderr.String(), `"log_type":"audit"`)
}

func TestRun_UsageErrors(t *testing.T) {
	clearEnv(t)

	t.Run("bad today flag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-today", "tomorrow"}, strings.NewReader("[]"), &stdout, &stderr)
		assert.Equal(t, exitUsage, code)
	})

	t.Run("malformed input", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(nil, strings.NewReader("{"), &stdout, &stderr)
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr.String(), "could not decode json input")
	})

	t.Run("missing input file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"-input", filepath.Join(t.TempDir(), "missing.json")}, strings.NewReader(""), &stdout, &stderr)
		assert.Equal(t, exitUsage, code)
	})

	t.Run("empty batch succeeds", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(nil, strings.NewReader("[]"), &stdout, &stderr)
		assert.Equal(t, exitOK, code)
		assert.Empty(t, stdout.String())
	})
}
