package console

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRun_DispatchesUntilQuit(t *testing.T) {
	var got []string
	handler := func(cmd string) string {
		got = append(got, cmd)
		return "ok " + cmd
	}
	var out bytes.Buffer
	in := strings.NewReader("/status\n\n  /next  \n/quit\n/never\n")
	if err := Run(context.Background(), in, &out, "> ", handler); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "/status" || got[1] != "/next" {
		t.Errorf("unexpected commands: %v", got)
	}
	if !strings.Contains(out.String(), "ok /next") || !strings.HasPrefix(out.String(), "> ") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestRun_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := Run(ctx, strings.NewReader("/next\n"), &bytes.Buffer{}, "", func(string) string {
		called = true
		return ""
	})
	if err != nil || called {
		t.Errorf("expected immediate stop, err=%v called=%v", err, called)
	}
}
