package hashutil

import (
	"io/ioutil"

	"github.com/pkg/errors"
)

// SumFile returns the sha256 digest of the file at path, read as a
// single message.
func SumFile(path string) (Hash, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Hash{}, errors.Wrap(err, "fail on read file for digest")
	}
	return SHA256(data)
}
