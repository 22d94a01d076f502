package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/github2/github"
	"github.com/kbukum/github2/version"
)

func TestRun_Schema(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), &out, []string{"schema", "user"}, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "- created_at: The date this user was registered (user date)") {
		t.Errorf("unexpected description:\n%s", out.String())
	}
}

func TestRun_SchemaUnknown(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), &out, []string{"schema", "gist"}, "", ""); err == nil {
		t.Fatal("expected an error for an unknown schema")
	}
	if err := run(context.Background(), &out, []string{"schema"}, "", ""); err == nil {
		t.Fatal("expected an error without a name")
	}
}

func TestRun_Ops(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), &out, []string{"ops"}, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"user\n", "issues\n", "commits\n", "repos\n", "follow", "required", "enhanced"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestPrintRecord(t *testing.T) {
	rec, err := github.IssueSchema.New(map[string]any{
		"number":     float64(3),
		"title":      "Typo",
		"created_at": "2010/04/21 10:31:00 -0700",
		"extra":      "hidden",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	printRecord(&out, rec)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 declared fields, got %d:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "number") || !strings.HasPrefix(lines[1], "title") {
		t.Errorf("expected declaration order, got:\n%s", out.String())
	}
	if !strings.Contains(lines[2], time.Date(2010, 4, 21, 10, 31, 0, 0, time.UTC).Format(time.DateTime)) {
		t.Errorf("expected formatted date, got %q", lines[2])
	}
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), &out, []string{"version"}, "", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), version.Version) {
		t.Errorf("expected the build version, got %q", out.String())
	}
}
