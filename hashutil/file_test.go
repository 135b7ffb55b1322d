package hashutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"massnet.org/crypto/hashutil"
)

func TestSumFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "hashutil_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "message.txt")
	if err := ioutil.WriteFile(path, []byte("hello world"), 0644); err != nil {
		t.Fatal(err)
	}

	h, err := hashutil.SumFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h.String() != want {
		t.Errorf("file digest not equal, got = %v, want = %v", h, want)
	}
}

func TestSumFileMissing(t *testing.T) {
	_, err := hashutil.SumFile(filepath.Join("testdata", "no-such-file"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("unexpected error cause, got = %v", errors.Cause(err))
	}
}
