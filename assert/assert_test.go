package assert

import (
	"testing"

	"github.com/picarlo/picarlo/perror"
)

func TestIsTruePanicsWithError(t *testing.T) {
	defer func() {
		v := recover()
		err, ok := v.(*perror.Error)
		if !ok {
			t.Fatalf("expected *perror.Error panic, got %T (%v)", v, v)
		}
		if err.Error() != "bad width 0" {
			t.Fatalf("unexpected panic message %q", err.Error())
		}
	}()
	IsTrue(true, "never")
	IsTrue(false, "bad width %d", 0)
	t.Fatalf("IsTrue(false) did not panic")
}
