package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "textkit.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// run executes the CLI with args against an empty config file
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runWithConfig(t, writeConfig(t, ""), stdin, args...)
}

func runWithConfig(t *testing.T, configPath, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(append([]string{"--config", configPath}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), err
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "substring with cap",
			args:     []string{"split", "-d", "XY", "-n", "4", "abcXYdefXghiXYjklYmno"},
			expected: "abc\ndefXghi\njklYmno\n",
		},
		{
			name:     "charset",
			args:     []string{"split", "--charset", "-d", "XY", "-n", "5", "abcXdefYghiXjklYmnoX"},
			expected: "abc\ndef\nghi\njkl\nmnoX\n",
		},
		{
			name:     "stdin lines",
			stdin:    "a,b\r\nc\n",
			args:     []string{"split", "-d", ","},
			expected: "a\nb\nc\n",
		},
		{
			name:     "strip tokens",
			args:     []string{"split", "-d", ",", "--strip", " a , b "},
			expected: "a\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("split error = %v", err)
			}
			if out != tt.expected {
				t.Errorf("output = %q, want %q", out, tt.expected)
			}
		})
	}
}

func TestSplitUsesConfig(t *testing.T) {
	path := writeConfig(t, "[split]\ndelimiter = \";\"\nmax_tokens = 2\n")
	out, err := runWithConfig(t, path, "", "split", "a;b;c")
	if err != nil {
		t.Fatalf("split error = %v", err)
	}
	if out != "a\nb;c\n" {
		t.Errorf("output = %q", out)
	}
}

func TestTransformCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"strip both", []string{"strip", "  hi  "}, "hi\n"},
		{"strip leading", []string{"strip", "-m", "leading", "  hi  "}, "hi  \n"},
		{"reverse", []string{"reverse", "abc", "xy"}, "cba\nyx\n"},
		{"delimit default set", []string{"delimit", "--with", ":", "a-b_c d"}, "a:b:c:d\n"},
		{"delimit custom set", []string{"delimit", "-s", ";", "-w", "|", "a,b;c"}, "a,b|c\n"},
		{"lower", []string{"lower", "HeLLo"}, "hello\n"},
		{"lower bounded", []string{"lower", "--bytes", "2", "HeLLo"}, "he\n"},
		{"upper", []string{"upper", "abc1"}, "ABC1\n"},
		{"lcopy", []string{"lcopy", "--size", "4", "abcdef"}, "abc\n"},
		{"lcopy huge size", []string{"lcopy", "--size", "9223372036854775807", "abc"}, "abc\n"},
		{"hex", []string{"hex", "9aFg"}, "9 10 15 -1\n"},
		{"casecmp equal", []string{"casecmp", "HELLO", "hello"}, "0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("%v error = %v", tt.args, err)
			}
			if out != tt.expected {
				t.Errorf("output = %q, want %q", out, tt.expected)
			}
		})
	}
}

func TestJSONOutput(t *testing.T) {
	out, err := run(t, "", "lcopy", "-o", "json", "--size", "3", "abc")
	if err != nil {
		t.Fatalf("lcopy error = %v", err)
	}

	var results []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results", len(results))
	}
	r := results[0]
	if r["input"] != "abc" || r["text"] != "ab" || r["needed"] != float64(3) || r["truncated"] != true {
		t.Errorf("unexpected result %v", r)
	}
}

func TestTableOutput(t *testing.T) {
	out, err := run(t, "", "split", "-o", "table", "-d", ",", "x,y")
	if err != nil {
		t.Fatalf("split error = %v", err)
	}
	for _, want := range []string{"input", "index", "token", `"x"`, `"y"`} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"empty delimiter", []string{"split", "-d", "", "abc"}, 2},
		{"unknown strip mode", []string{"strip", "-m", "middle", "x"}, 2},
		{"multi byte replacement", []string{"delimit", "-w", "ab", "x"}, 2},
		{"negative copy size", []string{"lcopy", "--size", "-1", "x"}, 2},
		{"unknown output format", []string{"reverse", "-o", "xml", "x"}, 2},
		{"unknown log level", []string{"reverse", "--log-level", "loud", "x"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := ExitCode(err); got != tt.exitCode {
				t.Errorf("ExitCode(%v) = %d, want %d", err, got, tt.exitCode)
			}
		})
	}
}

func TestCaseCmpRequiresTwoArgs(t *testing.T) {
	if _, err := run(t, "", "casecmp", "only-one"); err == nil {
		t.Error("casecmp with one argument should fail")
	}
}

func TestInvalidConfig(t *testing.T) {
	path := writeConfig(t, "[output]\nformat = \"xml\"\n")
	_, err := runWithConfig(t, path, "", "reverse", "x")
	if !mdwerror.HasCode(err, mdwerror.CodeValidationFailed) {
		t.Errorf("error = %v, want validation failure", err)
	}

	_, err = runWithConfig(t, filepath.Join(t.TempDir(), "missing.toml"), "", "reverse", "x")
	if ExitCode(err) != 3 {
		t.Errorf("missing config exit code = %d, want 3", ExitCode(err))
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "textkit v") {
		t.Errorf("version output = %q", out)
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Error("nil error must map to 0")
	}
	if ExitCode(errors.New("plain")) != 1 {
		t.Error("plain error must map to 1")
	}
	err := mdwerror.New("bad").WithCode(mdwerror.CodeInvalidInput)
	if ExitCode(err) != 2 {
		t.Errorf("invalid input exit code = %d", ExitCode(err))
	}
	wrapped := mdwerror.Wrap(mdwerror.New("missing").WithCode(mdwerror.CodeNotFound), "lookup failed")
	if ExitCode(wrapped) != 3 {
		t.Errorf("uncoded wrapper exit code = %d, want code of the cause", ExitCode(wrapped))
	}
}

func TestHexTableShowsRawBytes(t *testing.T) {
	out, err := run(t, "", "hex", "-o", "table", "a\xff")
	if err != nil {
		t.Fatalf("hex error = %v", err)
	}
	if !strings.Contains(out, `"\xff"`) {
		t.Errorf("table output should show byte 0xff as \\xff:\n%s", out)
	}
	if strings.Contains(out, `\u00ff`) {
		t.Errorf("table output shows byte 0xff as a rune:\n%s", out)
	}
}

func TestCommandsWithoutSetup(t *testing.T) {
	broken := writeConfig(t, "[split\ndelimiter = ")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"help", []string{"help"}, "Usage:"},
		{"help for subcommand", []string{"help", "split"}, "--delimiter"},
		{"completion", []string{"completion", "bash"}, "textkit"},
		{"version", []string{"version"}, "textkit v"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runWithConfig(t, broken, "", tt.args...)
			if err != nil {
				t.Fatalf("%v error = %v", tt.args, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("%v output missing %q:\n%s", tt.args, tt.want, out)
			}
		})
	}

	if _, err := runWithConfig(t, broken, "", "reverse", "x"); ExitCode(err) != 2 {
		t.Errorf("reverse with broken config exit code = %d, want 2", ExitCode(err))
	}
}

// syncBuffer lets the test read log output while the command writes it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// waitForLog blocks until msg appeared at least times times in logs
func waitForLog(t *testing.T, logs *syncBuffer, msg string, times int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Count(logs.String(), msg) >= times {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("log never showed %q %d times:\n%s", msg, times, logs.String())
}

func TestSplitWatchKeepsFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "textkit.toml")
	if err := os.WriteFile(path, []byte("[split]\ndelimiter = \";\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdin, feed := io.Pipe()
	var stdout bytes.Buffer
	var logs syncBuffer
	root := NewRootCommand()
	root.SetArgs([]string{"--config", path, "--watch", "--log-level", "debug", "split", "-d", ","})
	root.SetIn(stdin)
	root.SetOut(&stdout)
	root.SetErr(&logs)

	done := make(chan error, 1)
	go func() {
		done <- root.Execute()
	}()

	// settings are applied once by setup and once more for the -d flag,
	// and the watcher is running by then
	waitForLog(t, &logs, "settings applied", 2)

	staged := filepath.Join(dir, "staged.tmp")
	if err := os.WriteFile(staged, []byte("[split]\ndelimiter = \"|\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(staged, path); err != nil {
		t.Fatal(err)
	}
	waitForLog(t, &logs, "configuration reloaded", 1)

	if _, err := io.WriteString(feed, "a,b;c|d\n"); err != nil {
		t.Fatalf("writing stdin: %v", err)
	}
	feed.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("split --watch error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("split --watch did not finish")
	}

	if got, want := stdout.String(), "a\nb;c|d\n"; got != want {
		t.Errorf("split --watch output = %q, want %q", got, want)
	}
}
