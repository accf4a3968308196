//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnPagesAndResume(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("page 1–2 of 9"), "demo book should open at the first pair")

	require.NoError(t, tf.SendKeys(KeyNext))
	require.True(t, tf.SeePlain("page 3–4 of 9"), "l should turn forward")
	require.NoError(t, tf.SendKeys(KeyNext))
	require.True(t, tf.SeePlain("page 5–6 of 9"))

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(3*time.Second))

	data, err := os.ReadFile(tf.StatePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "current_pair = 2")

	// a second run resumes where the first stopped
	require.NoError(t, tf.StartApp())
	assert.True(t, tf.SeePlain("page 5–6 of 9"))
}

func TestEndShowsLastPair(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("--no-transitions"))
	require.True(t, tf.SeePlain("page 1–2 of 9"))

	require.NoError(t, tf.SendKeys(KeyEnd))
	require.True(t, tf.SeePlain("page 9 of 9"))

	require.NoError(t, tf.SendKeys(KeyNext))
	assert.True(t, tf.SeePlain("Pair 5 of 5"), "stepping past the end opens the info panel")
}

func TestManifestBook(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	path := tf.WriteFile("tiny.toml", `
title = "Tiny Book"

[[page]]
title = "Front"
body = "first"

[[page]]
title = "Back"
body = "second"
`)
	require.NoError(t, tf.StartApp("--page", "0", path))

	assert.True(t, tf.SeePlain("Tiny Book"))
	assert.True(t, tf.SeePlain("Front"))
	assert.True(t, tf.SeePlain("Back"))
}

func TestOutlineFlag(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--outline").CombinedOutput()
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "booklike"))
	assert.Contains(t, text, "pair 5")
	assert.Contains(t, text, "[action=sweep animated]")
}
