package testutil

import (
	"bytes"
	"encoding/hex"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Vector is a single hash test vector loaded from a yaml fixture. The
// input is given by exactly one of Text, Hex or Repeat; an all-empty
// vector stands for the empty message.
type Vector struct {
	Name   string  `yaml:"name"`
	Text   string  `yaml:"text,omitempty"`
	Hex    string  `yaml:"hex,omitempty"`
	Repeat *Repeat `yaml:"repeat,omitempty"`
	Sum    string  `yaml:"sum"`
}

// Repeat describes an input built by repeating Text Count times.
type Repeat struct {
	Text  string `yaml:"text"`
	Count int    `yaml:"count"`
}

type vectorFile struct {
	Vectors []*Vector `yaml:"vectors"`
}

// Input materializes the vector input bytes.
func (v *Vector) Input() ([]byte, error) {
	switch {
	case v.Repeat != nil:
		if v.Repeat.Count < 0 {
			return nil, errors.Errorf("negative repeat count %d in vector %s", v.Repeat.Count, v.Name)
		}
		return bytes.Repeat([]byte(v.Repeat.Text), v.Repeat.Count), nil
	case v.Hex != "":
		data, err := hex.DecodeString(v.Hex)
		if err != nil {
			return nil, errors.Wrapf(err, "fail on decode hex input of vector %s", v.Name)
		}
		return data, nil
	default:
		return []byte(v.Text), nil
	}
}

// LoadVectors reads hash test vectors from the yaml file at path.
func LoadVectors(path string) ([]*Vector, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "fail on read vector file")
	}
	var vf vectorFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, errors.Wrap(err, "fail on unmarshal vector file")
	}
	return vf.Vectors, nil
}
