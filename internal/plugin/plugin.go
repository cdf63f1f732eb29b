// Package plugin runs the user's init.lua at startup. The script gets a
// small halo table for registering aliases and tweaking appearance; it
// cannot reach back into the running shell after startup.
package plugin

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// InitFileName is the script looked for in the config directory.
const InitFileName = "init.lua"

// Result collects everything the init script registered.
type Result struct {
	Aliases   map[string]string
	ThemeName string
	Prompt    string
}

// RunInit executes the script at path and returns what it registered.
// A missing script is not an error; a script that fails to run is, so
// the caller can surface it without aborting startup.
func RunInit(path string) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	res := &Result{Aliases: make(map[string]string)}

	L := lua.NewState()
	defer L.Close()
	L.SetGlobal("halo", haloModule(L, res))

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("run %s: %w", path, err)
	}
	return res, nil
}

// haloModule builds the table exposed to the script.
func haloModule(L *lua.LState, res *Result) *lua.LTable {
	mod := L.NewTable()

	L.SetField(mod, "alias", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		expansion := L.CheckString(2)
		if name != "" {
			res.Aliases[name] = expansion
		}
		return 0
	}))

	L.SetField(mod, "theme", L.NewFunction(func(L *lua.LState) int {
		res.ThemeName = L.CheckString(1)
		return 0
	}))

	L.SetField(mod, "prompt", L.NewFunction(func(L *lua.LState) int {
		res.Prompt = L.CheckString(1)
		return 0
	}))

	return mod
}
