package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	err := printer.Success(map[string]any{
		"status": "ok",
		"root":   "/work/project",
	})
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["status"] != "ok" {
		t.Errorf("status = %v, want %q", result["status"], "ok")
	}
	if result["root"] != "/work/project" {
		t.Errorf("root = %v, want %q", result["root"], "/work/project")
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(NewConflictError("/work/project/.editorconfig already exists", nil))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["error"] != "/work/project/.editorconfig already exists" {
		t.Errorf("error = %v", result["error"])
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitConflict {
		t.Errorf("code = %v, want %d", result["code"], ExitConflict)
	}
}

func TestPrinter_Human_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	if err := printer.Success(map[string]any{"message": "Installed pre-commit hook"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Installed pre-commit hook") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrinter_Human_Error(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewPrinter(&buf, false, false)

		printer.Error(NewUserError("Destination must be within project root"))

		out := buf.String()
		if !strings.HasPrefix(out, "Error: ") {
			t.Errorf("output should start with 'Error: ': %q", out)
		}
		if !strings.Contains(out, "Destination must be within project root") {
			t.Errorf("output should contain message: %q", out)
		}
	})

	t.Run("cause printed on its own line", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewPrinter(&buf, false, false)

		printer.Error(NewFatalErrorWithCause("cannot read copy source", errors.New("no such file or directory")))

		out := buf.String()
		if !strings.Contains(out, "cannot read copy source\n") {
			t.Errorf("missing message line: %q", out)
		}
		if !strings.Contains(out, "no such file or directory") {
			t.Errorf("missing cause line: %q", out)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewPrinter(&buf, true, false)

		printer.Error(errors.New("untyped"))

		var result map[string]any
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("Failed to parse JSON: %v", err)
		}
		if code, _ := result["code"].(float64); int(code) != ExitUserError {
			t.Errorf("code = %v, want %d", result["code"], ExitUserError)
		}
	})
}

func TestPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Print("Hello, %s!", "world")

	if buf.String() != "Hello, world!" {
		t.Errorf("output = %q, want %q", buf.String(), "Hello, world!")
	}
}

func TestPrinter_Println(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Println("/work/project")

	if buf.String() != "/work/project\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrinter_IsJSON(t *testing.T) {
	var buf bytes.Buffer

	if !NewPrinter(&buf, true, false).IsJSON() {
		t.Error("IsJSON() should return true for JSON printer")
	}
	if NewPrinter(&buf, false, false).IsJSON() {
		t.Error("IsJSON() should return false for human printer")
	}
}

func TestPrinter_Warn(t *testing.T) {
	t.Run("human goes to error writer", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		printer := NewPrinter(&stdout, false, false).WithStderr(&stderr)

		printer.Warn("%s, installation aborted.", "Unable to find a .git directory for this project")

		if stdout.Len() != 0 {
			t.Errorf("stdout should be empty, got %q", stdout.String())
		}
		want := "WARNING: Unable to find a .git directory for this project, installation aborted.\n"
		if stderr.String() != want {
			t.Errorf("stderr = %q, want %q", stderr.String(), want)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewPrinter(&buf, true, false)

		printer.Warn("core.hooksPath is set")

		var result map[string]any
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
		}
		if result["warning"] != "core.hooksPath is set" {
			t.Errorf("warning = %v", result["warning"])
		}
	})
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table([]string{"HOOK", "STATUS"}, [][]string{
		{"pre-commit", "installed"},
		{"pre-push", "missing"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "pre-commit  installed") {
		t.Errorf("row = %q", lines[1])
	}
}

func TestErrorJSON_Format(t *testing.T) {
	result := ErrorJSON("test error", ExitUserError)

	var parsed struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("Failed to parse ErrorJSON output: %v", err)
	}
	if parsed.Error != "test error" || parsed.Code != ExitUserError {
		t.Errorf("parsed = %+v", parsed)
	}
}
