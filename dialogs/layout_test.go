package dialogs

import (
	"strings"
	"testing"
)

func TestOverlayHandlesAbsentDialog(t *testing.T) {
	if got := Overlay(nil, 80, 24); got != "" {
		t.Errorf("Overlay(nil) = %q, want empty", got)
	}
	d := NewExportDialog("out.csv", "")
	d.Hide()
	if got := Overlay(d, 80, 24); got != "" {
		t.Errorf("hidden dialog rendered %q, want empty", got)
	}
}

func TestOverlayCentersVisibleDialog(t *testing.T) {
	d := NewExportDialog("out.csv", "")
	out := Overlay(d, 80, 24)
	if out == "" {
		t.Fatal("visible dialog rendered nothing")
	}
	if !strings.Contains(out, "Export view as:") {
		t.Errorf("overlay missing prompt:\n%s", out)
	}
	if lines := strings.Count(out, "\n") + 1; lines != 24 {
		t.Errorf("overlay height = %d lines, want 24", lines)
	}
}
