package logcattest_test

import (
	"testing"

	"github.com/deixis/logcat"
	"github.com/deixis/logcat/logcattest"
)

func TestRecorder(t *testing.T) {
	core, rec := logcattest.NewCore()
	log := core.ForTag("APP")

	if _, ok := rec.Last(); ok {
		t.Error("expect no last entry on an empty recorder")
	}

	log.Info("a")
	log.Info("b")
	log.Warn("c")

	if rec.Len() != 3 {
		t.Errorf("expect 3 entries, but got %d", rec.Len())
	}
	if rec.Lines(logcat.Info) != 2 {
		t.Errorf("expect 2 info entries, but got %d", rec.Lines(logcat.Info))
	}
	if e, _ := rec.Last(); e.Message != "c" {
		t.Errorf("expect last message c, but got %s", e.Message)
	}

	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("expect an empty recorder after Reset, but got %d", rec.Len())
	}
}
