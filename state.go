/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package stubx

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/config"
	"dirpx.dev/stubx/registry"
)

// state is one immutable snapshot of the process-wide defaults: the
// active settings and the scalar registry built from them. Readers load
// the pointer atomically and never mutate the snapshot; writers assemble
// a brand-new state under buildMu and swap it in.
type state struct {
	settings apis.Settings
	reg      apis.Registry
	// pinned marks a registry explicitly installed via SetRegistry;
	// SetSettings will not rebuild a pinned registry.
	pinned bool
}

var (
	st      atomic.Pointer[state]
	buildMu sync.Mutex
)

// init publishes the initial snapshot with default settings.
func init() {
	s := config.Default()
	st.Store(&state{settings: s, reg: registry.New(s)})
}

// Settings returns the settings of the current snapshot.
func Settings() apis.Settings {
	return st.Load().settings
}

// SetSettings publishes a new snapshot with the given settings. The
// scalar registry is rebuilt for the new settings unless it is pinned.
func SetSettings(s apis.Settings) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nreg := old.reg
	if !old.pinned {
		nreg = registry.New(s)
	}
	st.Store(&state{settings: s, reg: nreg, pinned: old.pinned})
}

// Registry returns the scalar registry of the current snapshot.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs reg as the process-wide scalar registry and pins
// it: later SetSettings calls keep it in place until UnpinRegistry.
// A nil registry is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{settings: old.settings, reg: reg, pinned: true})
}

// UnpinRegistry discards a pinned registry and rebuilds the default one
// from the current settings.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{settings: old.settings, reg: registry.New(old.settings)})
}
