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

package stubx_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/stubx"
	"dirpx.dev/stubx/apis"
	"dirpx.dev/stubx/bean"
	"dirpx.dev/stubx/config"
	"dirpx.dev/stubx/factory"
	"dirpx.dev/stubx/registry"
)

type contact struct {
	Name   string
	Age    int
	Emails []string
}

type account struct {
	Ref   string
	Owner contact
	Next  *account
}

// resetState restores the default process-wide snapshot after a test
// that mutates it.
func resetState(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		stubx.UnpinRegistry()
		stubx.SetSettings(config.Default())
	})
}

func TestRandomInstanceOf_PopulatesStruct(t *testing.T) {
	c, err := stubx.RandomInstanceOf[contact]()
	require.NoError(t, err)

	require.Len(t, c.Name, config.DefaultStringLength)
	require.GreaterOrEqual(t, len(c.Emails), config.DefaultCollectionMin)
	require.LessOrEqual(t, len(c.Emails), config.DefaultCollectionMax)
	for _, e := range c.Emails {
		require.Len(t, e, config.DefaultStringLength)
	}
}

func TestRandomInstanceOf_ScalarShortCircuitIgnoresRestrictions(t *testing.T) {
	// A registry hit dispatches straight to the scalar factory; the
	// exclusion is inert.
	s, err := stubx.RandomInstanceOf[string](stubx.ExcludeProperty("name"))
	require.NoError(t, err)
	require.Len(t, s, config.DefaultStringLength)
}

func TestRandomInstanceOf_PropertyRestriction(t *testing.T) {
	c, err := stubx.RandomInstanceOf[contact](stubx.Property("name", "Jane"))
	require.NoError(t, err)
	require.Equal(t, "Jane", c.Name)
}

func TestRandomInstanceOf_PathBeatsProperty(t *testing.T) {
	a, err := stubx.RandomInstanceOf[account](
		stubx.Property("name", "Jane"),
		stubx.Path("account.owner.name", "June"),
	)
	require.NoError(t, err)
	require.Equal(t, "June", a.Owner.Name)
}

func TestRandomInstanceOf_ExcludeThenAssignAssigns(t *testing.T) {
	a, err := stubx.RandomInstanceOf[account](
		stubx.ExcludePath("account.ref"),
		stubx.Path("account.ref", "fixed"),
	)
	require.NoError(t, err)
	require.Equal(t, "fixed", a.Ref)
}

func TestRandomInstanceOf_AssignThenExcludeExcludes(t *testing.T) {
	a, err := stubx.RandomInstanceOf[account](
		stubx.Path("account.ref", "fixed"),
		stubx.ExcludePath("account.ref"),
	)
	require.NoError(t, err)
	require.Empty(t, a.Ref)
}

func TestRandomInstanceOf_FactoryRestriction(t *testing.T) {
	c, err := stubx.RandomInstanceOf[contact](
		stubx.Factory(stubx.TypeOf[int](), factory.Fixed(42)),
	)
	require.NoError(t, err)
	require.Equal(t, 42, c.Age)
}

func TestRandomInstanceOf_FactoryErrorWrapsConstruction(t *testing.T) {
	boom := errors.New("boom")
	_, err := stubx.RandomInstanceOf[contact](
		stubx.Factory(stubx.TypeOf[int](), factory.Func(func() (any, error) {
			return nil, boom
		})),
	)
	require.ErrorIs(t, err, bean.ErrConstruction)
	require.ErrorIs(t, err, boom)
}

func TestRandomInstanceOf_CollectionSizeForProperty(t *testing.T) {
	c, err := stubx.RandomInstanceOf[contact](
		stubx.CollectionSizeForProperty("emails", 4),
	)
	require.NoError(t, err)
	require.Len(t, c.Emails, 4)
}

func TestMustRandomInstanceOf_PanicsOnError(t *testing.T) {
	require.Panics(t, func() {
		stubx.MustRandomInstanceOf[contact](
			stubx.Factory(stubx.TypeOf[int](), factory.Func(func() (any, error) {
				return nil, errors.New("boom")
			})),
		)
	})
}

func TestRandomSliceOfN_ExactSize(t *testing.T) {
	cs, err := stubx.RandomSliceOfN[contact](3, 3)
	require.NoError(t, err)
	require.Len(t, cs, 3)
}

func TestRandomSliceOfN_NormalizesBounds(t *testing.T) {
	cs, err := stubx.RandomSliceOfN[int](5, -1)
	require.NoError(t, err)
	require.LessOrEqual(t, len(cs), 5)
}

func TestRandomSliceOf_HonorsSettingsBounds(t *testing.T) {
	cs, err := stubx.RandomSliceOf[contact]()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cs), config.DefaultCollectionMin)
	require.LessOrEqual(t, len(cs), config.DefaultCollectionMax)
}

func TestOneOf(t *testing.T) {
	require.Zero(t, stubx.OneOf[int]())

	domain := map[string]bool{"a": true, "b": true, "c": true}
	for i := 0; i < 100; i++ {
		require.True(t, domain[stubx.OneOf("a", "b", "c")])
	}
}

func TestRandomEnum(t *testing.T) {
	_, err := stubx.RandomEnum[int]()
	require.ErrorIs(t, err, factory.ErrEmptyEnum)

	v, err := stubx.RandomEnum(1, 2, 3)
	require.NoError(t, err)
	require.Contains(t, []int{1, 2, 3}, v)
}

func TestSetSettings_RebuildsScalarRegistry(t *testing.T) {
	resetState(t)

	s := stubx.Settings()
	s.StringLength = 7
	stubx.SetSettings(s)

	require.Equal(t, 7, stubx.Settings().StringLength)
	require.Len(t, stubx.RandomString(), 7)

	got, err := stubx.RandomInstanceOf[string]()
	require.NoError(t, err)
	require.Len(t, got, 7)
}

func TestSetRegistry_PinsAcrossSettingsChanges(t *testing.T) {
	resetState(t)

	pinned := registry.New(config.NewSettings(config.WithStringLength(3)))
	stubx.SetRegistry(pinned)

	s := stubx.Settings()
	s.StringLength = 20
	stubx.SetSettings(s)

	got, err := stubx.RandomInstanceOf[string]()
	require.NoError(t, err)
	require.Len(t, got, 3)

	stubx.UnpinRegistry()
	got, err = stubx.RandomInstanceOf[string]()
	require.NoError(t, err)
	require.Len(t, got, 20)
}

func TestSetRegistry_NilIgnored(t *testing.T) {
	before := stubx.Registry()
	stubx.SetRegistry(nil)
	require.Equal(t, before, stubx.Registry())
}

func TestTypeOf(t *testing.T) {
	require.Equal(t, "string", stubx.TypeOf[string]().String())
	require.Equal(t, "*stubx_test.contact", stubx.TypeOf[*contact]().String())
	// Interface types resolve without needing a concrete value.
	require.Equal(t, "apis.Registry", stubx.TypeOf[apis.Registry]().String())
}

func TestFacade_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if _, err := stubx.RandomInstanceOf[contact](); err != nil {
					t.Error(err)
					return
				}
				_ = stubx.RandomString()
				_ = stubx.Settings()
				_ = stubx.Registry()
			}
		}()
	}
	wg.Wait()
}
