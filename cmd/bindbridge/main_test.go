package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bindbridge/internal/resolve"
)

const declarations = `
version: "1"
bindings:
  - name: profile
    expose: "user.name,&save"
    attributes:
      ":title": page.title
      v-model: form.email
  - name: broken
    expose: "missing.value"
scope:
  user: {name: Ann}
  page: {title: Home}
  form: {email: ""}
delegates: [save]
`

func newTestApp() (*app, *bytes.Buffer) {
	out := &bytes.Buffer{}

	return &app{cache: resolve.NewCache(4), logger: zap.NewNop(), out: out}, out
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRunResolveText(t *testing.T) {
	a, out := newTestApp()
	path := writeTemp(t, "decl.yaml", declarations)

	require.NoError(t, a.runResolve(context.Background(), []string{"-format", "text", path}))

	text := out.String()
	assert.Contains(t, text, "profile\n")
	assert.Contains(t, text, "paths:     form, form.email, page, page.title, user, user.name")
	assert.Contains(t, text, "delegates: save")
	assert.Contains(t, text, "sync:      value <-> form.email")
}

func TestRunResolveYAMLFromTemplate(t *testing.T) {
	a, out := newTestApp()
	path := writeTemp(t, "page.html", `<div id="card" vue :title="card.title" @click="open"></div>`)

	require.NoError(t, a.runResolve(context.Background(), []string{path}))

	assert.Contains(t, out.String(), "name: card")
	assert.Contains(t, out.String(), "- card.title")
	assert.Contains(t, out.String(), "- open")
}

func TestRunResolveReportsFailures(t *testing.T) {
	a, out := newTestApp()
	path := writeTemp(t, "bad.yaml", "bindings:\n  - name: bad\n    attributes:\n      v-model: \"a b\"\n")

	err := a.runResolve(context.Background(), []string{"-format", "text", path})
	require.Error(t, err)
	assert.Contains(t, out.String(), "error: [resolve] unsupported_binding_value")
}

func TestRunCheck(t *testing.T) {
	a, out := newTestApp()
	path := writeTemp(t, "decl.yaml", declarations)

	err := a.runCheck(context.Background(), []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 bindings failed")

	assert.Contains(t, out.String(), "ok   profile")
	assert.Contains(t, out.String(), `FAIL broken: [wire] undeclared_binding "missing"`)
}

func TestRunCheckNeedsFixture(t *testing.T) {
	a, _ := newTestApp()
	path := writeTemp(t, "decl.yaml", "bindings:\n  - name: x\n    expose: a\n")

	err := a.runCheck(context.Background(), []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scope fixture")
}

func TestRunRejectsInvalidFile(t *testing.T) {
	a, _ := newTestApp()
	path := writeTemp(t, "dup.yaml", "bindings:\n  - name: x\n    expose: a\n  - name: x\n    expose: b\n")

	err := a.runResolve(context.Background(), []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate_binding")
}

func TestRunCheckSuggestsClosestPath(t *testing.T) {
	a, out := newTestApp()
	path := writeTemp(t, "typo.yaml", `
bindings:
  - name: typo
    attributes:
      ":title": user.nmae
scope:
  user: {name: Ann}
`)

	err := a.runCheck(context.Background(), []string{path})
	require.Error(t, err)

	assert.Contains(t, out.String(), `FAIL typo: [wire] undeclared_binding "user.nmae"`)
	assert.Contains(t, out.String(), `did you mean "user.name"?`)
}
