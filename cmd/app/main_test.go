package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"drugdiscovery/internal/sequence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstRecord(t *testing.T) {
	seq, err := firstRecord(strings.NewReader(">a\nmkt\nayi\n>b\nQQQ\n"))
	require.NoError(t, err)
	assert.Equal(t, "MKTAYI", seq)

	_, err = firstRecord(strings.NewReader(""))
	assert.ErrorIs(t, err, sequence.ErrNoRecords)
}

func TestSampleCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"sample"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, sequence.Sample+"\n", out.String())
}

func TestAnalyzeCommandJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"proteinAnalysis":{"family":"Kinase","function":"f","targetSite":"t"},"drugCandidates":[],"recommendations":"none"}`))
	}))
	t.Cleanup(server.Close)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"analyze", "--server", server.URL, "--sample", "--json"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		useSample, rawJSON = false, false
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), `"family": "Kinase"`)
	assert.Contains(t, out.String(), `"recommendations": "none"`)
}
