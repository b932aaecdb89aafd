package logger

import "testing"

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "prod"} {
		l, err := New("parlay-service", env)
		if err != nil {
			t.Fatalf("env %s: %v", env, err)
		}
		if got := l.Core().Enabled(-1); got != (env == "local") {
			t.Errorf("env %s: debug enabled = %v", env, got)
		}
		_ = l.Sync()
	}
}
