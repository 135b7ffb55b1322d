// Package service provides a lifecycle guard for long-running
// components that are started and stopped at most once at a time.
package service

import (
	"errors"
	"sync/atomic"
)

var (
	ErrOperating      = errors.New("service is operating")
	ErrAlreadyStarted = errors.New("service is already started")
	ErrAlreadyStopped = errors.New("service is already stopped")
)

type Service interface {
	Start() error
	OnStart() error
	Stop() error
	OnStop() error
	Started() bool
	Name() string
}

// BaseService serializes Start and Stop transitions of the wrapped
// implementation. OnStart and OnStop never run concurrently and never
// repeat for the same state.
type BaseService struct {
	impl      Service
	started   int32 // atomic
	operating int32 // atomic
	name      string
}

func NewBaseService(impl Service, name string) *BaseService {
	return &BaseService{
		impl: impl,
		name: name,
	}
}

func (bs *BaseService) Start() error {
	if swapped := atomic.CompareAndSwapInt32(&bs.operating, 0, 1); !swapped {
		return ErrOperating
	}
	defer atomic.StoreInt32(&bs.operating, 0)

	if atomic.LoadInt32(&bs.started) == 1 {
		return ErrAlreadyStarted
	}
	if err := bs.impl.OnStart(); err != nil {
		return err
	}
	atomic.StoreInt32(&bs.started, 1)

	return nil
}

func (bs *BaseService) OnStart() error {
	return nil
}

func (bs *BaseService) Stop() error {
	if swapped := atomic.CompareAndSwapInt32(&bs.operating, 0, 1); !swapped {
		return ErrOperating
	}
	defer atomic.StoreInt32(&bs.operating, 0)

	if atomic.LoadInt32(&bs.started) == 0 {
		return ErrAlreadyStopped
	}
	if err := bs.impl.OnStop(); err != nil {
		return err
	}
	atomic.StoreInt32(&bs.started, 0)

	return nil
}

func (bs *BaseService) OnStop() error {
	return nil
}

func (bs *BaseService) Started() bool {
	return atomic.LoadInt32(&bs.started) == 1
}

func (bs *BaseService) Name() string {
	return bs.name
}
