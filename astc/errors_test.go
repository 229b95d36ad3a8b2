package astc_test

import (
	"errors"
	"testing"

	"github.com/astc-codec/astc-geometry/astc"
)

func TestErrorString_MatchesUpstreamNames(t *testing.T) {
	cases := []struct {
		code astc.ErrorCode
		want string
	}{
		{astc.Success, "ASTCENC_SUCCESS"},
		{astc.ErrOutOfMem, "ASTCENC_ERR_OUT_OF_MEM"},
		{astc.ErrBadParam, "ASTCENC_ERR_BAD_PARAM"},
		{astc.ErrBadBlockSize, "ASTCENC_ERR_BAD_BLOCK_SIZE"},
		{astc.ErrBadContext, "ASTCENC_ERR_BAD_CONTEXT"},
	}

	for _, c := range cases {
		if got := astc.ErrorString(c.code); got != c.want {
			t.Fatalf("ErrorString(%d): got %q want %q", uint32(c.code), got, c.want)
		}
	}

	if got := astc.ErrorString(astc.ErrorCode(0xDEADBEEF)); got != "" {
		t.Fatalf("ErrorString(unknown): got %q want %q", got, "")
	}
}

func TestErrorCodeOf(t *testing.T) {
	if got := astc.ErrorCodeOf(nil); got != astc.Success {
		t.Fatalf("ErrorCodeOf(nil): got %v want %v", got, astc.Success)
	}

	if _, err := astc.NewBlockSizeDescriptor(7, 7, 1, false, 0); err == nil {
		t.Fatalf("NewBlockSizeDescriptor: got nil error, want error")
	} else if got := astc.ErrorCodeOf(err); got != astc.ErrBadBlockSize {
		t.Fatalf("ErrorCodeOf(bad block size): got %v want %v", got, astc.ErrBadBlockSize)
	}

	if got := astc.ErrorCodeOf(errors.New("some other error")); got != astc.ErrBadParam {
		t.Fatalf("ErrorCodeOf(non-astc): got %v want %v", got, astc.ErrBadParam)
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := astc.NewBlockSizeDescriptor(0, 0, 0, false, 0)
	if err == nil {
		t.Fatalf("NewBlockSizeDescriptor: got nil error, want error")
	}

	var e *astc.Error
	if !errors.As(err, &e) {
		t.Fatalf("error is not *astc.Error: %T", err)
	}
	if e.Code != astc.ErrBadBlockSize {
		t.Fatalf("code: got %v want %v", e.Code, astc.ErrBadBlockSize)
	}
	if e.Error() == "" {
		t.Fatalf("empty error message")
	}
}
