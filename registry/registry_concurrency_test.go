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

package registry_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/stubx/config"
	"dirpx.dev/stubx/registry"
)

// TestConcurrentLookup verifies that Lookup/Entries/Count and factory
// invocation are race-free under concurrent use: the registry is populated
// once by New and read-only afterwards.
func TestConcurrentLookup(t *testing.T) {
	reg := registry.New(config.Default())

	types := []reflect.Type{
		reflect.TypeOf(int(0)), reflect.TypeOf(int64(0)), reflect.TypeOf(""),
		reflect.TypeOf(false), reflect.TypeOf(float64(0)), reflect.TypeOf([]byte(nil)),
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				tt := types[i%len(types)]
				f, ok := reg.Lookup(tt)
				if !ok || f == nil {
					t.Errorf("lookup failed for %v: ok=%v", tt, ok)
					return
				}
				if _, err := f.NewValue(); err != nil {
					t.Errorf("factory for %v: %v", tt, err)
					return
				}
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	wg.Wait()
}
