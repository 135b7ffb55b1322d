package batch

import (
	cmap "github.com/orcaman/concurrent-map"

	"massnet.org/crypto/sha256"
)

// Job is a single digest request with a caller-chosen id.
type Job struct {
	ID   string
	Data []byte
}

// Result carries the outcome of one Job. Err is set when the job was
// rejected instead of hashed.
type Result struct {
	ID     string
	Digest sha256.Digest
	Err    error
}

type jobMap struct {
	m cmap.ConcurrentMap
}

func newJobMap() *jobMap {
	return &jobMap{
		m: cmap.New(),
	}
}

func (m *jobMap) SetIfAbsent(id string, job *Job) bool {
	return m.m.SetIfAbsent(id, job)
}

func (m *jobMap) Delete(id string) {
	m.m.Remove(id)
}

func (m *jobMap) Count() int {
	return m.m.Count()
}
