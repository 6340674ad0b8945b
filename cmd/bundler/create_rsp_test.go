package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCreateRsp(t *testing.T) {
	dir := t.TempDir()
	input := strings.Join([]string{
		"",            // language: blank, re-prompted
		"cs, java",    // language
		"",            // output: blank, re-prompted
		"out.txt",     // output
		"y",           // note
		"",            // sort -> name
		"n",           // remove empty lines
		"Dana Scully", // author
	}, "\n") + "\n"

	var out bytes.Buffer
	require.NoError(t, runCreateRsp(strings.NewReader(input), &out, dir))

	assert.Equal(t,
		"bundle\n--language \"cs,java\"\n--output \"out.txt\"\n--note\n--sort \"name\"\n--author \"Dana Scully\"\n",
		string(mustReadFile(t, filepath.Join(dir, responseFileName))))

	printed := out.String()
	assert.Contains(t, printed, "=== Response File Creator ===")
	assert.Contains(t, printed, "Required! Languages: ")
	assert.Contains(t, printed, "Required! Output: ")
	assert.Contains(t, printed, "SUCCESS! 'options.rsp' created.")
	assert.Contains(t, printed, "To run: bundler @options.rsp")
}

func TestRunCreateRspOptionalAnswersAtEOF(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	require.NoError(t, runCreateRsp(strings.NewReader("all\nbundle.txt\n"), &out, dir))

	assert.Equal(t,
		"bundle\n--language \"all\"\n--output \"bundle.txt\"\n--sort \"name\"\n",
		string(mustReadFile(t, filepath.Join(dir, responseFileName))))
}

func TestRunCreateRspInputClosed(t *testing.T) {
	dir := t.TempDir()

	err := runCreateRsp(strings.NewReader("cs\n"), &bytes.Buffer{}, dir)
	assert.ErrorIs(t, err, errInputClosed)
	assert.NoFileExists(t, filepath.Join(dir, responseFileName))
}

func TestCreateRspCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader("py\nout.py.txt\nn\ntype\ny\n\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"create-rsp"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t,
		"bundle\n--language \"py\"\n--output \"out.py.txt\"\n--remove-empty-lines\n--sort \"type\"\n",
		string(mustReadFile(t, filepath.Join(dir, responseFileName))))
}
