package main

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFigure = `<div class="figure left half" style="width: 484px; height: auto;">` + "\n" +
	`<img class="left half" style="width: 484px height: auto;" alt="Ninja Attack!" title="Ninja Attack!" src="/images/ninja.png">` + "\n" +
	`</div>`

// setupTestData creates a content root with images/ninja.png and a document using it
func setupTestData(t *testing.T) (dir, root string) {
	t.Helper()
	dir = t.TempDir()
	root = filepath.Join(dir, "content")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0o755))

	f, err := os.Create(filepath.Join(root, "images", "ninja.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 484, 10))))
	require.NoError(t, f.Close())

	doc := "Intro\n{% img left half /images/ninja.png Ninja Attack! %}\nOutro"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post.md"), []byte(doc), FilePermissions))
	return dir, root
}

func runCLI(args []string, stdin string) (int, string, string) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run(args, strings.NewReader(stdin), stdout, stderr)
	return code, stdout.String(), stderr.String()
}

// ==================== run() dispatch tests ====================

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	code, stdout, _ := runCLI(nil, "")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, CLIName)
	assert.Contains(t, stdout, CmdNameRender)
}

func TestRun_UnknownCommand(t *testing.T) {
	code, stdout, _ := runCLI([]string{"unknown"}, "")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stdout, ErrMsgUnknownCommand)
}

func TestRun_HelpForCommands(t *testing.T) {
	for _, cmd := range []string{CmdNameRender, CmdNameTag, CmdNameVersion, CmdNameHelp} {
		code, stdout, _ := runCLI([]string{CmdNameHelp, cmd}, "")
		assert.Equal(t, ExitCodeSuccess, code, cmd)
		assert.Contains(t, stdout, "Usage:", cmd)
	}
}

// ==================== render tests ====================

func TestRender_File(t *testing.T) {
	dir, root := setupTestData(t)

	code, stdout, stderr := runCLI([]string{CmdNameRender, "-i", filepath.Join(dir, "post.md"), "-r", root}, "")
	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, "Intro\n"+testFigure+"\nOutro", stdout)
}

func TestRender_StdinToFile(t *testing.T) {
	dir, root := setupTestData(t)
	outPath := filepath.Join(dir, "out.html")

	code, _, stderr := runCLI([]string{CmdNameRender, "--input", "-", "--root", root, "--output", outPath},
		"{% img left half /images/ninja.png Ninja Attack! %}")
	require.Equal(t, ExitCodeSuccess, code, stderr)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, testFigure, string(data))
}

func TestRender_ConfigFile(t *testing.T) {
	dir, root := setupTestData(t)
	cfgPath := filepath.Join(dir, "figtag.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("content_root: "+root+"\n"), FilePermissions))

	code, stdout, stderr := runCLI([]string{CmdNameRender, "-i", filepath.Join(dir, "post.md"), "-c", cfgPath}, "")
	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Contains(t, stdout, testFigure)
}

func TestRender_MissingImage(t *testing.T) {
	dir, _ := setupTestData(t)

	code, _, stderr := runCLI([]string{CmdNameRender, "-i", filepath.Join(dir, "post.md"), "-r", t.TempDir()}, "")
	assert.Equal(t, ExitCodeError, code)
	assert.Contains(t, stderr, ErrMsgExpandFailed)
}

func TestRender_KeepRawStrategy(t *testing.T) {
	dir, _ := setupTestData(t)

	code, stdout, _ := runCLI([]string{CmdNameRender, "-i", filepath.Join(dir, "post.md"), "-r", t.TempDir(), "-s", "keepraw"}, "")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, "{% img left half /images/ninja.png Ninja Attack! %}")
}

func TestRender_UsageErrors(t *testing.T) {
	code, _, stderr := runCLI([]string{CmdNameRender}, "")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgMissingInput)

	code, _, stderr = runCLI([]string{CmdNameRender, "-i", "-", "-s", "explode"}, "")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgInvalidStrategy)

	code, _, _ = runCLI([]string{CmdNameRender, "--nope"}, "")
	assert.Equal(t, ExitCodeUsageError, code)
}

func TestRender_MissingInputFile(t *testing.T) {
	code, _, stderr := runCLI([]string{CmdNameRender, "-i", filepath.Join(t.TempDir(), "none.md")}, "")
	assert.Equal(t, ExitCodeInputError, code)
	assert.Contains(t, stderr, ErrMsgReadFileFailed)
}

func TestRender_BadConfig(t *testing.T) {
	dir, _ := setupTestData(t)
	cfgPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("error_strategy: explode\n"), FilePermissions))

	code, _, stderr := runCLI([]string{CmdNameRender, "-i", filepath.Join(dir, "post.md"), "-c", cfgPath}, "")
	assert.Equal(t, ExitCodeInputError, code)
	assert.Contains(t, stderr, ErrMsgEngineFailed)
}

func TestRender_Verbose(t *testing.T) {
	dir, root := setupTestData(t)

	code, _, stderr := runCLI([]string{CmdNameRender, "-i", filepath.Join(dir, "post.md"), "-r", root, "-v"}, "")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stderr, "figure rendered")
}

// ==================== tag tests ====================

func TestTag_Render(t *testing.T) {
	_, root := setupTestData(t)

	code, stdout, stderr := runCLI([]string{CmdNameTag, "-m", "left half /images/ninja.png Ninja Attack!", "-r", root}, "")
	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, testFigure+"\n", stdout)
}

func TestTag_Errors(t *testing.T) {
	_, root := setupTestData(t)

	code, _, stderr := runCLI([]string{CmdNameTag}, "")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgMissingMarkup)

	code, _, stderr = runCLI([]string{CmdNameTag, "-m", "no source here", "-r", root}, "")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgRenderFailed)

	code, _, _ = runCLI([]string{CmdNameTag, "-m", "/images/missing.png", "-r", root}, "")
	assert.Equal(t, ExitCodeError, code)
}

// ==================== version tests ====================

func TestVersion_Text(t *testing.T) {
	code, stdout, _ := runCLI([]string{CmdNameVersion}, "")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, "figtag version")
}

func TestVersion_JSON(t *testing.T) {
	code, stdout, _ := runCLI([]string{CmdNameVersion, "-F", OutputFormatJSON}, "")
	require.Equal(t, ExitCodeSuccess, code)

	var v versionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &v))
	assert.NotEmpty(t, v.GoVersion)
}

func TestVersion_InvalidFormat(t *testing.T) {
	code, _, stderr := runCLI([]string{CmdNameVersion, "-F", "xml"}, "")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgInvalidFormat)
}

func TestGetVersionInfo_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.yaml")
	data := "project:\n  version: 1.2.3\ngit:\n  commit: abc\n  branch: main\nbuild:\n  time: today\n"
	require.NoError(t, os.WriteFile(path, []byte(data), FilePermissions))

	v := getVersionInfo([]string{filepath.Join(t.TempDir(), "none.yaml"), path})
	assert.Equal(t, "1.2.3", v.Version)
	assert.Equal(t, "abc", v.Commit)
	assert.Equal(t, "main", v.Branch)
	assert.Equal(t, "today", v.BuildTime)
}
