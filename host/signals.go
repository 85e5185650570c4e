package host

import "github.com/milk9111/gemrunner/engine"

// SignalFeed queues UI signals for the gameplay layer. Only connected
// (node, signal) pairs are delivered; emits on unconnected pairs are dropped,
// which is what keeps stale UI from reaching gameplay after a scene swap.
type SignalFeed struct {
	connected map[string]bool
	queue     []engine.Signal
}

func NewSignalFeed() *SignalFeed {
	return &SignalFeed{connected: make(map[string]bool)}
}

func (f *SignalFeed) Connect(node engine.NodeHandle, signal string) {
	if node == nil || !node.Valid() {
		return
	}
	f.connected[signalKey(node.Path(), signal)] = true
}

func (f *SignalFeed) Signals() []engine.Signal {
	out := f.queue
	f.queue = nil
	return out
}

func (f *SignalFeed) emit(node engine.NodeHandle, signal string) {
	if node == nil || !f.connected[signalKey(node.Path(), signal)] {
		return
	}
	f.queue = append(f.queue, engine.Signal{Target: node, Name: signal})
}

func signalKey(path, signal string) string {
	return path + "\x00" + signal
}
