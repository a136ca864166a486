package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger_Redirect(t *testing.T) {
	defer SetLogger(nil)

	var captured string
	SetLogger(func(format string, v ...any) {
		captured = fmt.Sprintf(format, v...)
	})

	Logf("loaded %d records", 42)
	if captured != "loaded 42 records" {
		t.Errorf("unexpected log output %q", captured)
	}
}

func TestSetLogger_NilMutes(t *testing.T) {
	SetLogger(nil)
	// Must not panic.
	Logf("ignored %v", struct{}{})
}
