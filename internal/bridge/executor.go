package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/danmuck/bridgectl/internal/host"
)

var (
	ErrMissingData          = errors.New("bridge: missing data word")
	ErrUnsupportedOperation = errors.New("bridge: unsupported operation")
)

// Result is the outcome of one executed request.
type Result struct {
	Value    uint32 `json:"value"`
	HasValue bool   `json:"has_value"`
}

func (r Result) String() string {
	if !r.HasValue {
		return "OK"
	}
	return fmt.Sprintf("OK 0x%08x", r.Value)
}

// Executor drives the hardware for a validated request.
type Executor interface {
	Execute(ctx context.Context, req host.Valid) (Result, error)
}

type regKey struct {
	iface host.Interface
	n     int
	addr  host.Payload
}

// Loopback is an in-memory register file keyed by interface and address
// words. Reads address with every word, writes with all but the last word,
// which is the data.
type Loopback struct {
	mu     sync.Mutex
	regs   map[regKey]uint32
	clocks map[host.Interface]uint32
}

func NewLoopback() *Loopback {
	return &Loopback{
		regs:   make(map[regKey]uint32),
		clocks: make(map[host.Interface]uint32),
	}
}

func (l *Loopback) Execute(ctx context.Context, req host.Valid) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	words := req.Words()

	l.mu.Lock()
	defer l.mu.Unlock()
	switch req.Operation() {
	case host.OperationRead:
		return Result{Value: l.regs[keyFor(req.Interface(), words)], HasValue: true}, nil
	case host.OperationWrite:
		if len(words) == 0 {
			return Result{}, fmt.Errorf("%w: %s", ErrMissingData, req)
		}
		last := len(words) - 1
		l.regs[keyFor(req.Interface(), words[:last])] = words[last]
		return Result{}, nil
	case host.OperationSMISet:
		if len(words) == 0 {
			return Result{}, fmt.Errorf("%w: %s", ErrMissingData, req)
		}
		l.clocks[req.Interface()] = words[0]
		return Result{Value: words[0], HasValue: true}, nil
	}
	return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedOperation, req.Operation())
}

// Clock returns the last bus setting stored by smiset for iface.
func (l *Loopback) Clock(iface host.Interface) (uint32, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.clocks[iface]
	return v, ok
}

func keyFor(iface host.Interface, addr []uint32) regKey {
	k := regKey{iface: iface, n: len(addr)}
	copy(k.addr[:], addr)
	return k
}
