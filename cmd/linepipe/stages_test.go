// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"
	"testing"

	"github.com/linepipe/linepipe/internal/issue"
	"github.com/linepipe/linepipe/internal/stage"
)

func TestStagesCommand(t *testing.T) {
	res := execute(t, nil, nil, "stages")
	if res.err != nil {
		t.Fatal(res.err)
	}
	for _, name := range stage.DefaultRegistry.Names() {
		s, _ := stage.DefaultRegistry.Lookup(name)
		if !strings.Contains(res.stdout, s.Usage()) {
			t.Errorf("stages output lacks %q", s.Usage())
		}
	}
	if !strings.Contains(res.stdout, "--ignore-case") {
		t.Error("stages output lacks the flag listing")
	}
}

func TestDocCommand(t *testing.T) {
	raw := execute(t, nil, nil, "doc", "sort", "--raw")
	if raw.err != nil {
		t.Fatal(raw.err)
	}
	if !strings.HasPrefix(raw.stdout, "# sort\n") {
		t.Errorf("raw doc = %q, want Markdown starting with the title", raw.stdout[:min(len(raw.stdout), 20)])
	}

	rendered := execute(t, nil, nil, "doc", "uniq")
	if rendered.err != nil {
		t.Fatal(rendered.err)
	}
	s, _ := stage.DefaultRegistry.Lookup("uniq")
	if !strings.Contains(rendered.stdout, "uniq") || rendered.stdout == s.Doc() {
		t.Errorf("rendered doc = %q", rendered.stdout)
	}
}

func TestDocCommand_UnknownStage(t *testing.T) {
	res := execute(t, nil, nil, "doc", "awk")
	if got := exitCode(res.err); got != exitUsage {
		t.Fatalf("exit code = %d, want %d (err %v)", got, exitUsage, res.err)
	}
	if got := issueID(res.err); got != issue.UnknownStageId {
		t.Errorf("issue = %d, want UnknownStageId", got)
	}
}

func TestDocCommand_Issues(t *testing.T) {
	res := execute(t, nil, nil, "doc", "--issues", "--raw")
	if res.err != nil {
		t.Fatal(res.err)
	}
	for _, iss := range issue.Values() {
		if !strings.Contains(res.stdout, iss.Title()) {
			t.Errorf("issue guide lacks %q", iss.Title())
		}
	}

	if res := execute(t, nil, nil, "doc", "--issues", "sort"); res.err == nil {
		t.Error("doc --issues with a stage should fail")
	}
	if res := execute(t, nil, nil, "doc"); res.err == nil {
		t.Error("doc without a stage should fail")
	}
}
