// Package wasmhandle guards wazero runtimes, compiled modules and module
// instances.
//
// All three are interfaces whose null handle is nil and whose release is
// Close(ctx). Runtimes and compiled modules are owned by unique guards:
//
//	rt := wasmhandle.NewRuntime(ctx, nil)
//	defer rt.Close()
//
// A Source compiles a binary once and instantiates it on demand. Instances
// are duplicable: cloning an instance guard instantiates the same compiled
// module again under a fresh name, giving an independent instance that is
// closed by its own guard.
//
//	src, err := wasmhandle.NewSource(ctx, rt.Get(), wasmBytes, "guest")
//	inst, err := src.Instantiate(ctx)
//	defer inst.Close()
//	worker, err := inst.Clone()
package wasmhandle
