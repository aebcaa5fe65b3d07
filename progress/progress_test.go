package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBarCounts(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(5, &out).SetCaption("Strides")
	for i := 0; i < 5; i++ {
		bar.Increment()
	}
	bar.Finish()

	if got := bar.Current(); got != 5 {
		t.Fatalf("Current() = %d, want 5", got)
	}
	if !bytes.Contains(out.Bytes(), []byte("Strides")) {
		t.Errorf("rendered bar %q does not contain caption", out.String())
	}
}

func TestBarTemplateElements(t *testing.T) {
	for _, elem := range []string{`{{string . "prefix"}}`, "{{counters . }}", "{{bar . }}", "{{percent . }}", "{{speed . }}"} {
		if !strings.Contains(barTemplate, elem) {
			t.Errorf("bar template %q is missing %s", barTemplate, elem)
		}
	}
}
