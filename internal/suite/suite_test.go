package suite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myregex/internal/syntax"
)

const validYAML = `suites:
  - name: groups
    pattern: "foo(bar|baz)wakka"
    description: grouped alternation
    examples:
      - foobarwakka
      - foobazwakka
    negative_examples:
      - foo
      - foowakka
  - name: star
    pattern: "foo*"
    examples: ["", foo, foofoo]
    negative_examples: [fo, fooo]
`

func TestLoad(t *testing.T) {
	suites, err := Load([]byte(validYAML))
	require.NoError(t, err)
	require.Len(t, suites, 2)

	assert.Equal(t, "groups", suites[0].Name)
	assert.Equal(t, "foo(bar|baz)wakka", suites[0].Pattern)
	assert.Equal(t, "grouped alternation", suites[0].Description)
	assert.Equal(t, []string{"foobarwakka", "foobazwakka"}, suites[0].Examples)
	assert.Equal(t, []string{"foo", "foowakka"}, suites[0].NegativeExamples)
	assert.Equal(t, []string{"", "foo", "foofoo"}, suites[1].Examples)
	assert.False(t, suites[1].Strict)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"invalid yaml", "suites: [", "failed to parse YAML"},
		{"no suites", "suites: []", "no suites found"},
		{"missing name", "suites:\n  - pattern: a\n    examples: [a]\n", "suite name is required"},
		{"no examples", "suites:\n  - name: x\n    pattern: a\n", "has no examples"},
		{"duplicate", "suites:\n  - name: x\n    examples: [a]\n  - name: x\n    examples: [b]\n", "duplicate suite name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suites.yml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	suites, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, suites, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorContains(t, err, "failed to read file")
}

func TestRunnerAllPass(t *testing.T) {
	suites, err := Load([]byte(validYAML))
	require.NoError(t, err)

	r := &Runner{Workers: 3}
	report, err := r.Run(context.Background(), suites)
	require.NoError(t, err)

	assert.True(t, report.Passed())
	assert.Empty(t, report.CompileErrors)
	require.Len(t, report.Results, 9)
	assert.Equal(t, Result{Suite: "groups", Pattern: "foo(bar|baz)wakka", Input: "foobarwakka", Want: true, Got: true}, report.Results[0])
	assert.Equal(t, Result{Suite: "star", Pattern: "foo*", Input: "fooo", Want: false, Got: false}, report.Results[8])
}

func TestRunnerReportsFailures(t *testing.T) {
	suites := []Suite{
		{Name: "wrong", Pattern: "(a|b)*", Examples: []string{"ab", "abc"}, NegativeExamples: []string{"ba"}},
		{Name: "strict", Pattern: "(a", Strict: true, Examples: []string{"a"}},
		{Name: "lenient", Pattern: "(a", Examples: []string{"a"}},
	}

	report, err := (&Runner{}).Run(context.Background(), suites)
	require.NoError(t, err)
	assert.False(t, report.Passed())

	failures := report.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, "abc", failures[0].Input)
	assert.Equal(t, "ba", failures[1].Input)

	require.Len(t, report.CompileErrors, 1)
	assert.Equal(t, "strict", report.CompileErrors[0].Suite)
	assert.ErrorIs(t, report.CompileErrors[0].Err, syntax.ErrUnbalanced)
}

func TestRunnerCancelled(t *testing.T) {
	suites, err := Load([]byte(validYAML))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&Runner{Workers: 1}).Run(ctx, suites)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSampleSuitesPass(t *testing.T) {
	suites, err := LoadFile(filepath.Join("..", "..", "testdata", "suites.yml"))
	require.NoError(t, err)
	require.Len(t, suites, 5)
	assert.True(t, suites[4].Strict)

	report, err := (&Runner{Workers: 4}).Run(context.Background(), suites)
	require.NoError(t, err)
	assert.Empty(t, report.CompileErrors)
	assert.Empty(t, report.Failures())
}
