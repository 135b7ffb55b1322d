// Package batch runs sha256 digest jobs on a shared worker pool.
//
// Digester serves two call styles: SumBatch hashes a slice of jobs and
// blocks until every result is in, Submit schedules a single job and
// returns immediately, with the digest kept in an LRU result store
// until looked up or evicted.
package batch

import (
	"sync"
	"time"

	"github.com/panjf2000/ants"
	"github.com/pkg/errors"

	"massnet.org/crypto/ccache"
	"massnet.org/crypto/config"
	"massnet.org/crypto/logging"
	"massnet.org/crypto/service"
	"massnet.org/crypto/sha256"
	"massnet.org/crypto/version"
)

var (
	// ErrNotStarted is returned when jobs are handed to a digester
	// that is not running.
	ErrNotStarted = errors.New("digester is not started")

	// ErrDuplicateJob is returned when a job id is already in flight.
	ErrDuplicateJob = errors.New("job with same id is in flight")
)

// Digester computes sha256 digests for submitted jobs on a fixed-size
// worker pool.
type Digester struct {
	*service.BaseService
	cfg        *config.Batch
	workerPool *ants.Pool
	inflight   *jobMap
	results    *ccache.DigestCache
	wg         sync.WaitGroup
}

// NewDigester builds a stopped Digester from cfg. A nil cfg uses the
// defaults.
func NewDigester(cfg *config.Config) (*Digester, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := config.CheckConfig(cfg); err != nil {
		return nil, err
	}
	d := &Digester{
		cfg:      cfg.Batch,
		inflight: newJobMap(),
		results:  ccache.NewDigestCache(cfg.Batch.CacheSize),
	}
	d.BaseService = service.NewBaseService(d, "digester")
	return d, nil
}

// OnStart implements service.Service.
func (d *Digester) OnStart() error {
	workerPool, err := ants.NewPoolPreMalloc(d.cfg.Workers)
	if err != nil {
		return errors.Wrap(err, "fail on create worker pool")
	}
	d.workerPool = workerPool
	logging.CPrint(logging.INFO, "digester started", logging.LogFormat{
		"version": version.GetVersion(),
		"workers": d.cfg.Workers,
	})
	return nil
}

// OnStop implements service.Service.
func (d *Digester) OnStop() error {
	d.wg.Wait()
	d.workerPool.Release()
	logging.CPrint(logging.INFO, "digester stopped")
	return nil
}

// SumBatch hashes jobs on the worker pool and returns results in job
// order. Per-job failures land in the matching Result, not in the
// returned error.
func (d *Digester) SumBatch(jobs []Job) ([]Result, error) {
	if !d.Started() {
		return nil, ErrNotStarted
	}
	var total uint64
	for i := range jobs {
		total += uint64(len(jobs[i].Data))
	}
	if err := ensureMemory(total); err != nil {
		return nil, err
	}

	results := make([]Result, len(jobs))
	var wg sync.WaitGroup
	for i := range jobs {
		i := i
		job := jobs[i]
		results[i].ID = job.ID
		wg.Add(1)
		if err := d.workerPool.Submit(func() {
			defer wg.Done()
			results[i].Digest, results[i].Err = sha256.Sum256(job.Data)
		}); err != nil {
			results[i].Err = errors.Wrap(err, "fail on submit to worker pool")
			wg.Done()
		}
	}
	wg.Wait()

	return results, nil
}

// Submit schedules an asynchronous digest job. Oversized inputs,
// duplicate ids and memory pressure are reported synchronously; an
// admitted job always completes and its digest lands in the result
// store.
func (d *Digester) Submit(id string, data []byte) error {
	if !d.Started() {
		return ErrNotStarted
	}
	if uint64(len(data)) > sha256.MaxSize {
		return sha256.ErrDataTooLarge
	}
	if err := ensureMemory(uint64(len(data))); err != nil {
		return err
	}

	job := &Job{ID: id, Data: data}
	if !d.inflight.SetIfAbsent(id, job) {
		return ErrDuplicateJob
	}
	d.wg.Add(1)
	if err := d.workerPool.Submit(func() {
		defer d.wg.Done()
		d.runJob(job)
	}); err != nil {
		d.inflight.Delete(id)
		d.wg.Done()
		return errors.Wrap(err, "fail on submit to worker pool")
	}
	return nil
}

func (d *Digester) runJob(job *Job) {
	start := time.Now()
	digest, err := sha256.Sum256(job.Data)
	if err != nil {
		// cannot happen for admitted jobs, the size is checked on submit
		logging.CPrint(logging.ERROR, "digest job failed", logging.LogFormat{
			"id":  job.ID,
			"err": err,
		})
		d.inflight.Delete(job.ID)
		return
	}
	d.results.Add(job.ID, digest)
	d.inflight.Delete(job.ID)
	logging.CPrint(logging.DEBUG, "digest job done", logging.LogFormat{
		"id":      job.ID,
		"bytes":   len(job.Data),
		"elapsed": time.Since(start),
	})
}

// Lookup fetches the digest computed for an asynchronous job. It
// reports false while the job is in flight and after the entry was
// evicted from the result store.
func (d *Digester) Lookup(id string) (sha256.Digest, bool) {
	return d.results.Get(id)
}

// Pending returns the number of asynchronous jobs not yet finished.
func (d *Digester) Pending() int {
	return d.inflight.Count()
}
