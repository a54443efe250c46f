package wasmhandle

import (
	"context"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/wippyai/handleguard/handle"
)

// ContextCloser is implemented by wazero's closable objects.
type ContextCloser interface {
	Close(ctx context.Context) error
}

// Closer releases a wazero object by calling Close with Ctx. A nil object is
// ignored; a nil Ctx means context.Background().
type Closer[T ContextCloser] struct {
	Ctx context.Context
}

// Release closes v.
func (c Closer[T]) Release(v T) error {
	if any(v) == nil {
		return nil
	}
	ctx := c.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := v.Close(ctx); err != nil {
		return err
	}
	handle.Logger().Debug("wazero object closed", zap.String("type", handle.TypeName[T]()))
	return nil
}

// Runtime is a unique guard over a wazero runtime.
type Runtime = handle.Unique[wazero.Runtime, handle.Zero[wazero.Runtime], Closer[wazero.Runtime]]

// Config holds configuration for runtime creation
type Config struct {
	// MemoryLimitPages sets the maximum memory per instance in pages (64KB each).
	// 0 means default (65536 pages = 4GB).
	MemoryLimitPages uint32

	// CloseOnContextDone makes function calls stop when their context is done.
	CloseOnContextDone bool
}

// NewRuntime creates a wazero runtime owned by a unique guard. Closing the
// guard closes the runtime and everything instantiated in it.
func NewRuntime(ctx context.Context, cfg *Config) *Runtime {
	runtimeCfg := wazero.NewRuntimeConfig()

	if cfg != nil {
		if cfg.MemoryLimitPages > 0 {
			runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
		}
		if cfg.CloseOnContextDone {
			runtimeCfg = runtimeCfg.WithCloseOnContextDone(true)
		}
	}

	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
	return handle.New[wazero.Runtime, handle.Zero[wazero.Runtime]](rt, Closer[wazero.Runtime]{Ctx: ctx})
}
