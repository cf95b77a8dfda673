package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	auditSteps, auditStride, auditFormat, auditWatch = "", 0, "text", false
	renderSteps, renderStride = "", 0
	geoFormat = "yaml"
	contactForm, contactName, contactEmail, contactMessage = "form", "", "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writePage(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestGeoCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"geo", "distance", "0", "0", "0", "1"}, "111.195 km\n"},
		{[]string{"geo", "validate", "45", "120"}, "valid\n"},
		{[]string{"geo", "ndvi", "0.1", "0.5"}, "0.6667 Dense Forest\n"},
		{[]string{"geo", "ndvi", "0", "0"}, "0.0000 Urban/Barren\n"},
	}
	for _, tt := range tests {
		got, err := run(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, got, tt.args)
	}
}

func TestGeoErrors(t *testing.T) {
	_, err := run(t, "geo", "validate", "91", "0")
	assert.ErrorContains(t, err, "out of range")

	_, err = run(t, "geo", "distance", "0", "x", "0", "1")
	assert.ErrorContains(t, err, `"x" is not a number`)

	_, err = run(t, "geo", "stats")
	assert.EqualError(t, err, "no values")
}

func TestGeoStats(t *testing.T) {
	got, err := run(t, "geo", "stats", "--format", "json", "1", "2", "6")
	require.NoError(t, err)

	var s struct{ Mean, Min, Max float64 }
	require.NoError(t, json.Unmarshal([]byte(got), &s))
	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 6.0, s.Max)
}

func TestGeoClassify(t *testing.T) {
	path := writePage(t, "samples.geojson", `{"type":"FeatureCollection","features":[
{"type":"Feature","geometry":{"type":"Point","coordinates":[-120,45]},"properties":{"name":"field","red":0.1,"nir":0.5}},
{"type":"Feature","geometry":{"type":"Point","coordinates":[-120,46]},"properties":{"name":"lake","red":0.5,"nir":0.1}}]}`)

	got, err := run(t, "geo", "classify", path)
	require.NoError(t, err)
	assert.Contains(t, got, "name: field")
	assert.Contains(t, got, "Dense Forest: 1")
	assert.Contains(t, got, "Water: 1")
}

func TestAudit_Markdown(t *testing.T) {
	path := writePage(t, "page.md", "# Home\n\nHello.\n\n## Projects\n\nSome work.\n")

	got, err := run(t, "audit", path, "--steps", "0", "--format", "json")
	require.NoError(t, err)

	var report struct {
		Title  string
		Frames []struct{ Active string }
	}
	require.NoError(t, json.Unmarshal([]byte(got), &report))
	assert.Equal(t, "Home", report.Title)
	require.Len(t, report.Frames, 1)
	// Both sections start within 200px of the top, so the later one wins.
	assert.Equal(t, "projects", report.Frames[0].Active)
}

func TestAudit_Errors(t *testing.T) {
	_, err := run(t, "audit", "page.pdf")
	assert.ErrorContains(t, err, "page.pdf: not a page file (want one of .htm, .html, .markdown, .md)")

	_, err = run(t, "render", "notes.txt")
	assert.ErrorContains(t, err, "not a page file")

	path := writePage(t, "page.html", "<html><body></body></html>")
	_, err = run(t, "audit", path, "--format", "xml")
	assert.ErrorContains(t, err, `unknown format "xml"`)

	_, err = run(t, "audit", path, "--steps", "top")
	assert.ErrorContains(t, err, "not a scroll position or link")
}

func TestRender(t *testing.T) {
	path := writePage(t, "page.html", `<html><body><section id="a" data-top="0" data-height="400"><div class="reveal">hi</div></section></body></html>`)

	got, err := run(t, "render", path, "--steps", "0")
	require.NoError(t, err)
	assert.Contains(t, got, "slideInDown 0.6s ease forwards")
}

func TestContact(t *testing.T) {
	path := writePage(t, "page.html", `<html><body><form><input name="name"><input name="email"><textarea name="message"></textarea></form></body></html>`)

	got, err := run(t, "contact", path, "--name", "Ada", "--email", "ada@example.com", "--message", "hi")
	require.NoError(t, err)
	assert.Equal(t, "Thank you Ada! Your message has been sent successfully. We will get back to you at ada@example.com soon.\n", got)

	_, err = run(t, "contact", path, "--name", "Ada")
	assert.ErrorContains(t, err, "--name and --email are required")

	_, err = run(t, "contact", path, "--name", "Ada", "--email", "a@b.c", "--form", "#missing")
	assert.ErrorContains(t, err, "no form matching")
}
