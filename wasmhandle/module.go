package wasmhandle

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/handleguard/errors"
	"github.com/wippyai/handleguard/handle"
)

// Compiled is a unique guard over a compiled module.
type Compiled = handle.Unique[wazero.CompiledModule, handle.Zero[wazero.CompiledModule], Closer[wazero.CompiledModule]]

// Module is a duplicable guard over a module instance.
type Module = handle.Duplicable[api.Module, handle.Zero[api.Module]]

// Compile compiles bin in rt. A compile failure produces no guard.
func Compile(ctx context.Context, rt wazero.Runtime, bin []byte) (*Compiled, error) {
	return handle.NewFrom[wazero.CompiledModule, handle.Zero[wazero.CompiledModule]](func() (wazero.CompiledModule, error) {
		return rt.CompileModule(ctx, bin)
	}, Closer[wazero.CompiledModule]{Ctx: ctx})
}

// Source instantiates one compiled module any number of times. Instances
// are named prefix-1, prefix-2, ...; an empty prefix gives anonymous
// instances.
type Source struct {
	runtime  wazero.Runtime
	compiled *Compiled
	prefix   string
	seq      atomic.Uint64
}

// NewSource compiles bin in rt.
func NewSource(ctx context.Context, rt wazero.Runtime, bin []byte, prefix string) (*Source, error) {
	if rt == nil {
		return nil, errors.InvalidInput(errors.PhaseOpen, "nil runtime")
	}
	compiled, err := Compile(ctx, rt, bin)
	if err != nil {
		return nil, err
	}
	return &Source{
		runtime:  rt,
		compiled: compiled,
		prefix:   prefix,
	}, nil
}

// Instantiate creates a new instance owned by a duplicable guard. Closing the
// guard closes the instance; cloning it instantiates the module again.
func (s *Source) Instantiate(ctx context.Context) (*Module, error) {
	return handle.NewDuplicableFrom[api.Module, handle.Zero[api.Module]](
		func() (api.Module, error) {
			return s.instantiate(ctx)
		},
		Closer[api.Module]{Ctx: ctx}.Release,
		func(m api.Module) (api.Module, error) {
			if m == nil {
				return nil, nil
			}
			return s.instantiate(ctx)
		},
	)
}

// Close closes the compiled module. Existing instances stay usable.
func (s *Source) Close() error {
	return s.compiled.Close()
}

func (s *Source) instantiate(ctx context.Context) (api.Module, error) {
	compiled := s.compiled.Get()
	if compiled == nil {
		return nil, errors.Closed(errors.PhaseOpen, "module source")
	}

	modConfig := wazero.NewModuleConfig()
	if s.prefix != "" {
		modConfig = modConfig.WithName(s.prefix + "-" + strconv.FormatUint(s.seq.Add(1), 10))
	} else {
		modConfig = modConfig.WithName("") // anonymous for parallel instantiation
	}

	mod, err := s.runtime.InstantiateModule(ctx, compiled, modConfig)
	if err != nil {
		return nil, err
	}
	handle.Logger().Debug("module instantiated", zap.String("name", mod.Name()))
	return mod, nil
}
