package vm

import "sync"

var machinePool = sync.Pool{
	New: func() any {
		return &Machine{}
	},
}

// GetMachine returns a reusable machine from the pool. Independent
// scripts share nothing, so pooled machines are safe across runs once
// reset.
func GetMachine() *Machine {
	return machinePool.Get().(*Machine)
}

// PutMachine resets a machine and returns it to the pool.
func PutMachine(m *Machine) {
	m.Reset()
	m.Code = nil
	m.Constants = nil
	m.Arena = nil
	m.Lines = nil
	m.Out = nil
	machinePool.Put(m)
}
