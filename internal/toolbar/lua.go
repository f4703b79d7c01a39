// Package toolbar provides toolbar command sinks for explicit block
// type conversions.
//
// The core only requires that a kind's command is invoked once per
// conversion with no arguments; what the command does to selection or
// formatting is the host's business. The Lua sink lets hosts script
// that behavior without recompiling.
package toolbar

import (
	"fmt"
	"os"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Lua is a toolbar backed by a Lua script. The script defines a
// global "toolbar" table of zero-argument functions keyed by block
// type tag; missing entries are silent no-ops.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes
// command invocations.
type Lua struct {
	mu sync.Mutex
	L  *lua.LState
}

// NewLua creates a toolbar from Lua source.
func NewLua(script string) (*Lua, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading toolbar script: %w", err)
	}
	return &Lua{L: L}, nil
}

// LoadLua creates a toolbar from a script file.
func LoadLua(path string) (*Lua, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading toolbar script %s: %w", path, err)
	}
	return NewLua(string(src))
}

// Close releases the Lua state.
func (t *Lua) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.L != nil {
		t.L.Close()
		t.L = nil
	}
}

// Command invokes toolbar.<name>() in the script. Unknown names and a
// missing toolbar table are silent no-ops; only a failing script call
// is an error.
func (t *Lua) Command(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.L == nil {
		return nil
	}

	tbl := t.L.GetGlobal("toolbar")
	if tbl == lua.LNil {
		return nil
	}
	fn, ok := t.L.GetField(tbl, name).(*lua.LFunction)
	if !ok {
		return nil
	}

	if err := t.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}); err != nil {
		return fmt.Errorf("toolbar command %s: %w", name, err)
	}
	return nil
}

// Block type commands, keyed by wire tag.

func (t *Lua) H1() error            { return t.Command("h1") }
func (t *Lua) H2() error            { return t.Command("h2") }
func (t *Lua) H3() error            { return t.Command("h3") }
func (t *Lua) Code() error          { return t.Command("code") }
func (t *Lua) UnorderedList() error { return t.Command("unordered-list") }
func (t *Lua) OrderedList() error   { return t.Command("ordered-list") }
func (t *Lua) TaskList() error      { return t.Command("task-list") }
func (t *Lua) Table() error         { return t.Command("table") }

// openSafeLibraries opens the side-effect-free standard libraries.
// io, os, and friends stay closed; a toolbar script has no business
// touching the filesystem.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
}
