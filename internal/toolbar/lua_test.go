package toolbar

import (
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/blockdown/internal/block"
)

const countingScript = `
calls = {}
local function count(name)
	return function() calls[name] = (calls[name] or 0) + 1 end
end
toolbar = {
	h1 = count("h1"),
	code = count("code"),
	["task-list"] = count("task-list"),
}
`

func calls(t *testing.T, tb *Lua, name string) int {
	t.Helper()
	v := tb.L.GetField(tb.L.GetGlobal("calls"), name)
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0
	}
	return int(n)
}

func TestCommandInvokesScriptOnce(t *testing.T) {
	tb, err := NewLua(countingScript)
	if err != nil {
		t.Fatalf("NewLua: %v", err)
	}
	defer tb.Close()

	if err := tb.H1(); err != nil {
		t.Fatalf("H1: %v", err)
	}
	if got := calls(t, tb, "h1"); got != 1 {
		t.Errorf("h1 invoked %d times, want 1", got)
	}

	if err := tb.TaskList(); err != nil {
		t.Fatalf("TaskList: %v", err)
	}
	if got := calls(t, tb, "task-list"); got != 1 {
		t.Errorf("task-list invoked %d times, want 1", got)
	}
}

func TestMissingCommandIsNoOp(t *testing.T) {
	tb, err := NewLua(countingScript)
	if err != nil {
		t.Fatalf("NewLua: %v", err)
	}
	defer tb.Close()

	// No "table" entry in the script.
	if err := tb.Table(); err != nil {
		t.Errorf("Table = %v, want silent no-op", err)
	}
}

func TestMissingToolbarTableIsNoOp(t *testing.T) {
	tb, err := NewLua(`x = 1`)
	if err != nil {
		t.Fatalf("NewLua: %v", err)
	}
	defer tb.Close()

	if err := tb.H1(); err != nil {
		t.Errorf("H1 = %v, want silent no-op", err)
	}
}

func TestFailingCommandReturnsError(t *testing.T) {
	tb, err := NewLua(`toolbar = { h1 = function() error("boom") end }`)
	if err != nil {
		t.Fatalf("NewLua: %v", err)
	}
	defer tb.Close()

	if err := tb.H1(); err == nil {
		t.Errorf("H1 = nil, want the script error")
	}
}

func TestBrokenScriptRejected(t *testing.T) {
	if _, err := NewLua(`toolbar = {`); err == nil {
		t.Errorf("NewLua accepted a broken script")
	}
}

func TestUnsafeLibrariesClosed(t *testing.T) {
	tb, err := NewLua(`has_io = (io ~= nil); has_os = (os ~= nil)`)
	if err != nil {
		t.Fatalf("NewLua: %v", err)
	}
	defer tb.Close()

	if tb.L.GetGlobal("has_io") == lua.LTrue || tb.L.GetGlobal("has_os") == lua.LTrue {
		t.Errorf("io/os libraries leaked into the sandbox")
	}
}

func TestCommandAfterClose(t *testing.T) {
	tb, err := NewLua(countingScript)
	if err != nil {
		t.Fatalf("NewLua: %v", err)
	}
	tb.Close()

	if err := tb.H1(); err != nil {
		t.Errorf("H1 after Close = %v, want nil", err)
	}
}

// The Lua sink satisfies the block toolbar contract.
var _ block.Toolbar = (*Lua)(nil)
