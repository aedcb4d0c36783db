package casteljau

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("default logger is enabled")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	c := NewController(NewControlPoints(3), nil)
	c.PointerDown(2)
	c.PointerMove(Pt(10, 10))
	c.PointerUp()
	c.PointerDown(17)
	c.SetOrder(1000)
	for _, want := range []string{"drag started", "drag ended", "index=2", "pointer move dropped", "order changed"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output %q doesn't contain %q", buf.String(), want)
		}
	}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if !strings.Contains(line, "level=DEBUG") {
			t.Errorf("record not logged at debug level: %s", line)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) didn't restore the silent logger")
	}
}
