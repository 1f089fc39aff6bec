package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	eventA = `{"id":"aaaa","pubkey":"","created_at":1,"kind":1,"tags":[["e","root1","","root"],["e","reply1","","reply"]],"content":"","sig":""}`
	eventB = `["EVENT","x",{"id":"bbbb","pubkey":"","created_at":2,"kind":1,"tags":[["e","root2","","root"],["p","pk2","","root"]],"content":"","sig":""}]`
	eventC = `{"id":"cccc","pubkey":"","created_at":3,"kind":1,"tags":[],"content":"","sig":""}`
)

func TestRunGet(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{eventA, eventB, eventC}, "\n"))
	out := &bytes.Buffer{}

	require.NoError(t, runGet(out, in, "root", "", false))
	assert.Equal(t, "root1\nroot2\n", out.String())
}

func TestRunGetWithIDAndType(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{eventA, eventB, eventC}, "\n"))
	out := &bytes.Buffer{}

	require.NoError(t, runGet(out, in, "root", "p", true))
	assert.Equal(t, "bbbb\tpk2\n", out.String())
}

func TestRunGetReportsBadLines(t *testing.T) {
	in := strings.NewReader(eventA + "\nnot json\n")
	out := &bytes.Buffer{}

	err := runGet(out, in, "reply", "", false)
	assert.ErrorContains(t, err, "1 lines couldn't be decoded")
	assert.Equal(t, "reply1\n", out.String())
}

func TestRootCommandGet(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetIn(strings.NewReader(eventA + "\n"))
	rootCmd.SetArgs([]string{"get", "--label", "reply"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "reply1\n", out.String())
}
