package host

import (
	"fmt"
	"strings"
	"sync"

	"github.com/milk9111/gemrunner/engine"
	"github.com/milk9111/gemrunner/scenes"
)

type assetHandle struct {
	path string
}

func (h *assetHandle) Path() string { return h.path }

type assetState struct {
	scene *scenes.Scene
	err   error
	done  bool
}

// AssetServer loads scene definitions off the main loop. Loads are never
// cancelled; a superseded load finishes and sits unobserved in the map.
type AssetServer struct {
	mu    sync.Mutex
	loads map[*assetHandle]*assetState
}

func NewAssetServer() *AssetServer {
	return &AssetServer{loads: make(map[*assetHandle]*assetState)}
}

func (a *AssetServer) Load(path string) engine.AssetHandle {
	h := &assetHandle{path: path}
	state := &assetState{}

	a.mu.Lock()
	a.loads[h] = state
	a.mu.Unlock()

	go func() {
		var scene *scenes.Scene
		var err error
		if isScenePath(path) {
			scene, err = scenes.LoadScene(path)
		} else {
			err = fmt.Errorf("assets: %s is not a scene resource", path)
		}

		a.mu.Lock()
		state.scene = scene
		state.err = err
		state.done = true
		a.mu.Unlock()
	}()

	return h
}

// IsReady reports completion, not success. A failed load still completes so
// the requester can observe the error when it tries to use the handle.
func (a *AssetServer) IsReady(h engine.AssetHandle) bool {
	state := a.state(h)
	return state != nil && state.done
}

func (a *AssetServer) resolve(h engine.AssetHandle) (*scenes.Scene, error) {
	state := a.state(h)
	if state == nil {
		return nil, fmt.Errorf("assets: unknown handle")
	}
	if !state.done {
		return nil, fmt.Errorf("assets: %s still loading", h.Path())
	}
	if state.err != nil {
		return nil, state.err
	}
	return state.scene, nil
}

func (a *AssetServer) state(h engine.AssetHandle) *assetState {
	ah, ok := h.(*assetHandle)
	if !ok {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loads[ah]
}

func isScenePath(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}
