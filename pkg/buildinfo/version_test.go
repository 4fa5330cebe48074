package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	if got := Resolved(); got != "v1.2.3" {
		t.Errorf("Resolved() = %q", got)
	}
	if !strings.HasPrefix(Template(), "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", Template())
	}
	if !strings.Contains(String(), "commit: "+Commit) {
		t.Errorf("String() = %q", String())
	}
}
