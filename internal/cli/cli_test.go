package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yildizm/tipcalc/internal/calculator"
	"github.com/yildizm/tipcalc/internal/config"
	"github.com/yildizm/tipcalc/internal/emoji"
)

// billScript enters a 20.00 subtotal and an 8% tip
const billScript = `# subtotal
select
up*3 select   # 2
up select     # 0
select        # .
up select     # 0
up select     # 0
# tip
down select
up*8 select   # 8
`

// writeTestConfig writes a config file so tests do not pick up user or
// system configuration
func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { emoji.SetEmojiDisabled(false) })

	cmd := NewRootCommand("dev", "none", "unknown")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestReplay_StdinJSON(t *testing.T) {
	cfg := writeTestConfig(t, "version: \"1.0\"\n")

	out, err := execute(t, billScript, "replay", "--config", cfg, "--no-emoji", "-o", "json")
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	for _, want := range []string{`"subtotal": "20.00"`, `"tip_percentage": 8`, `"tip_amount": "1.60"`, `"total": "21.60"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %s, got:\n%s", want, out)
		}
	}
}

func TestReplay_FileWithTrace(t *testing.T) {
	cfg := writeTestConfig(t, "version: \"1.0\"\n")
	scriptPath := filepath.Join(t.TempDir(), "bill.txt")
	if err := os.WriteFile(scriptPath, []byte("select\nup*2 select\n"), 0o600); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}

	out, err := execute(t, "", "replay", "--config", cfg, "--no-emoji", "--trace", "-o", "markdown", scriptPath)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}

	if !strings.Contains(out, "[1] select") || !strings.Contains(out, "[4] select") {
		t.Errorf("Expected a trace entry per button, got:\n%s", out)
	}
	if !strings.Contains(out, "✎ [$] $1.") {
		t.Errorf("Expected editing row with buffer and cursor, got:\n%s", out)
	}
	if !strings.Contains(out, "# Tip Calculator Summary") {
		t.Errorf("Expected markdown summary, got:\n%s", out)
	}
}

func TestReplay_ConfigLimits(t *testing.T) {
	cfg := writeTestConfig(t, "entry:\n  percent_max_digits: 2\n")

	// 1 then 8 gives 18% with two-digit capture
	src := "down select up select up*8 select\n"
	out, err := execute(t, src, "replay", "--config", cfg, "-o", "csv")
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !strings.Contains(out, "Tip %,18%,true,Tip: 18%") {
		t.Errorf("Expected 18%% tip with wider limit, got:\n%s", out)
	}
}

func TestReplay_Stats(t *testing.T) {
	cfg := writeTestConfig(t, "version: \"1.0\"\n")

	out, err := execute(t, billScript, "replay", "--config", cfg, "--stats", "-o", "csv")
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	for _, want := range []string{"Commits: 2\n", "Bills completed: 1\n", "Rejected symbols: 0\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected stats to contain %q, got:\n%s", want, out)
		}
	}
}

func TestReplay_ParseError(t *testing.T) {
	cfg := writeTestConfig(t, "version: \"1.0\"\n")

	_, err := execute(t, "up\nleft\n", "replay", "--config", cfg)
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected error to name line 2, got %v", err)
	}
}

func TestReplay_OutputFile(t *testing.T) {
	cfg := writeTestConfig(t, "version: \"1.0\"\n")
	dest := filepath.Join(t.TempDir(), "summary.json")

	out, err := execute(t, billScript, "replay", "--config", cfg, "-o", "json", "--output-file", dest)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if strings.Contains(out, "21.60") {
		t.Errorf("Expected summary only in file, got stdout:\n%s", out)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Failed to read summary: %v", err)
	}
	if !strings.Contains(string(data), `"total": "21.60"`) {
		t.Errorf("Expected total in file, got:\n%s", data)
	}
}

func TestReplay_MissingFile(t *testing.T) {
	cfg := writeTestConfig(t, "version: \"1.0\"\n")

	_, err := execute(t, "", "replay", "--config", cfg, filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected missing file error, got %v", err)
	}
}

func TestReplay_InvalidConfig(t *testing.T) {
	cfg := writeTestConfig(t, "display:\n  theme: neon\n")

	_, err := execute(t, "up\n", "replay", "--config", cfg)
	if err == nil || !strings.Contains(err.Error(), "invalid theme") {
		t.Errorf("Expected invalid theme error, got %v", err)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tipcalc.yaml")

	out, err := execute(t, "", "--no-emoji", "config", "init", "--path", path)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(out, "[OK] Configuration file created at: "+path) {
		t.Errorf("Unexpected init output:\n%s", out)
	}

	if _, err := execute(t, "", "config", "init", "--path", path); err == nil {
		t.Error("Expected error when config already exists")
	}

	out, err = execute(t, "", "--no-emoji", "--config", path, "config", "validate")
	if err != nil {
		t.Fatalf("config validate failed: %v", err)
	}
	if !strings.Contains(out, "Configuration is valid") || !strings.Contains(out, "Tip percentage digits: 1") {
		t.Errorf("Unexpected validate output:\n%s", out)
	}
}

func TestConfigShow(t *testing.T) {
	cfg := writeTestConfig(t, "display:\n  theme: minimal\n")

	out, err := execute(t, "", "--config", cfg, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "theme: minimal") {
		t.Errorf("Expected merged theme in YAML, got:\n%s", out)
	}

	out, err = execute(t, "", "--config", cfg, "config", "show", "--format", "json")
	if err != nil {
		t.Fatalf("config show --format json failed: %v", err)
	}
	if !strings.Contains(out, `"theme": "minimal"`) {
		t.Errorf("Expected merged theme in JSON, got:\n%s", out)
	}

	if _, err := execute(t, "", "--config", cfg, "config", "show", "--format", "toml"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "tipcalc development (local-build)") {
		t.Errorf("Unexpected version output:\n%s", out)
	}
}

func TestAppSettings(t *testing.T) {
	oldOutput, oldNoColor := outputFmt, noColor
	defer func() { outputFmt, noColor = oldOutput, oldNoColor }()

	a := &app{cfg: config.DefaultConfig()}
	a.cfg.Output.DefaultFormat = "csv"

	outputFmt = ""
	if got := a.outputFormat(); got != "csv" {
		t.Errorf("Expected config format csv, got %s", got)
	}
	outputFmt = "json"
	if got := a.outputFormat(); got != "json" {
		t.Errorf("Expected flag format json, got %s", got)
	}

	noColor = false
	a.cfg.Output.ColorMode = "always"
	if !a.useColor() {
		t.Error("Expected color with color_mode always")
	}
	noColor = true
	if a.useColor() {
		t.Error("Expected --no-color to win over color_mode")
	}

	a.cfg.Entry.PercentMaxDigits = 2
	if got := a.limits().PercentMaxDigits; got != 2 {
		t.Errorf("Expected percent digits 2, got %d", got)
	}
}

func TestWriteRows(t *testing.T) {
	emoji.SetEmojiDisabled(true)
	defer emoji.SetEmojiDisabled(false)

	s := calculator.NewSession()
	s.Down()

	var b bytes.Buffer
	writeRows(&b, s)

	want := "  [$] Enter Subtotal:\n▶ [%] Tip %:\n  [TIP] Tip Amount:\n  [SUM] Total:\n"
	if got := b.String(); got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}
