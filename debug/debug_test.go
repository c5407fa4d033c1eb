package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log"
)

func TestLog(t *testing.T) {
	old := Logger()
	defer SetLogger(old)

	buf := &bytes.Buffer{}
	SetLogger(log.NewLogfmtLogger(buf))
	Log("token", "type", "TLiteral", "offset", 3)
	got := buf.String()
	for _, want := range []string{"level=debug", "msg=token", "type=TLiteral", "offset=3"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("FDF_TEST_FLAG", "true")
	if !boolEnv("FDF_TEST_FLAG") {
		t.Errorf("expected true")
	}
	t.Setenv("FDF_TEST_FLAG", "nope")
	if boolEnv("FDF_TEST_FLAG") {
		t.Errorf("expected false for unparsable value")
	}
	if boolEnv("FDF_TEST_FLAG_UNSET") {
		t.Errorf("expected false for unset")
	}
}
