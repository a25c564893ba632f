// Package guest exposes the bootfmt engine to WebAssembly guests as a
// wazero host module, for guests that need debug printing before (or
// without) a real runtime of their own.
//
// The module exports the format driver and each direct converter as host
// calls under the name "bootfmt:debug/print". Pointer arguments are guest
// linear-memory addresses; the format string is null-terminated and the
// argument block is walked with 32-bit layout rules, since wasm32 is the
// only word model wazero guests have.
//
//	rt := wazero.NewRuntime(ctx)
//	host := guest.NewHost(bootfmt.NewSink(os.Stderr))
//	if _, err := guest.Register(ctx, rt, host); err != nil {
//		return err
//	}
//
// Host calls never trap the guest: a fault (unreadable format string,
// argument block out of bounds) renders nothing or the defined sentinel,
// and is reported through the host's logger.
package guest
