package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/optimode/emailsyntax"
	"github.com/optimode/emailsyntax/internal/cli"
)

func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli.Run(context.Background(), "emailsyntax", args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_TextAllValid(t *testing.T) {
	code, out, _ := run(t, "", "simple@example.com", `"address..very"@email.com`)
	assert.Equal(t, cli.ExitValid, code)
	assert.Equal(t,
		"VALID   simple@example.com\n"+
			"VALID   \"address..very\"@email.com\n",
		out)
}

func TestRun_TextInvalid(t *testing.T) {
	code, out, _ := run(t, "", "john..doe@example.com", "ok@example.com")
	assert.Equal(t, cli.ExitInvalid, code)
	assert.Equal(t,
		"INVALID john..doe@example.com -- [syntax] Consecutive dots (.) are not allowed.\n"+
			"VALID   ok@example.com\n",
		out)
}

func TestRun_Suggest(t *testing.T) {
	code, out, _ := run(t, "", "--suggest", "user@gmial.com")
	assert.Equal(t, cli.ExitValid, code)
	assert.Equal(t, "VALID   user@gmial.com (did you mean user@gmail.com?)\n", out)
}

func TestRun_Stdin(t *testing.T) {
	input := "a@example.com\r\n\n   \n.b@example.com\n"
	code, out, _ := run(t, input)
	assert.Equal(t, cli.ExitInvalid, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "VALID   a@example.com", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "INVALID .b@example.com"))
}

func TestRun_JSON(t *testing.T) {
	code, out, _ := run(t, "", "--format", "json", "x@example.com", "Abc.example.com")
	assert.Equal(t, cli.ExitInvalid, code)

	var results []emailsyntax.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.True(t, results[0].Valid)
	assert.False(t, results[1].Valid)
	assert.Equal(t, "Email did not have an at(@).", results[1].Checks[0].Details)
}

func TestRun_YAML(t *testing.T) {
	code, out, _ := run(t, "", "--format=yaml", "--suggest", "--all", ".x@gmial.com")
	assert.Equal(t, cli.ExitInvalid, code)

	var results []emailsyntax.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.False(t, results[0].Valid)
	require.Len(t, results[0].Checks, 2)
	assert.Equal(t, emailsyntax.LevelSyntax, results[0].Checks[0].Level)
	assert.Equal(t, "gmail.com", results[0].Checks[1].Suggestion)
}

func TestRun_DebugLogging(t *testing.T) {
	code, _, errOut := run(t, "", "--log-level", "debug", "--env", "prod", "bad")
	assert.Equal(t, cli.ExitInvalid, code)
	assert.Contains(t, errOut, `"msg":"email check failed"`)
	assert.Contains(t, errOut, `"msg":"validation finished"`)
}

func TestRun_UsageErrors(t *testing.T) {
	code, _, errOut := run(t, "", "--format", "xml", "a@example.com")
	assert.Equal(t, cli.ExitUsage, code)
	assert.Contains(t, errOut, "format")

	code, _, _ = run(t, "", "--unknown")
	assert.Equal(t, cli.ExitUsage, code)
}

func TestRun_Help(t *testing.T) {
	code, out, errOut := run(t, "", "-h")
	assert.Equal(t, cli.ExitValid, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Usage: emailsyntax")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := cli.Run(ctx, "emailsyntax", []string{"a@example.com"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, cli.ExitUsage, code)
	assert.Empty(t, stdout.String())
}
