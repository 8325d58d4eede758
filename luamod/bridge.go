package luamod

import (
	lua "github.com/yuin/gopher-lua"
)

// goValue converts a Lua value into plain Go data. Tables become
// []any or map[string]any, numbers become int64 when whole. Functions
// have no Go representation and convert to nil.
func goValue(lv lua.LValue) any {
	return goValueSeen(lv, make(map[*lua.LTable]bool))
}

func goValueSeen(lv lua.LValue, seen map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LUserData:
		return v.Value
	case *lua.LTable:
		// Cycles terminate as nil.
		if seen[v] {
			return nil
		}
		seen[v] = true
		return tableValueSeen(v, seen)
	default:
		return nil
	}
}

func tableValueSeen(t *lua.LTable, seen map[*lua.LTable]bool) any {
	maxN, count, isSeq := 0, 0, true
	t.ForEach(func(k, _ lua.LValue) {
		count++
		n, ok := k.(lua.LNumber)
		if !ok || float64(n) != float64(int(n)) || int(n) < 1 {
			isSeq = false
			return
		}
		if int(n) > maxN {
			maxN = int(n)
		}
	})

	if isSeq && count == maxN && maxN > 0 {
		arr := make([]any, maxN)
		for i := 1; i <= maxN; i++ {
			arr[i-1] = goValueSeen(t.RawGetInt(i), seen)
		}
		return arr
	}

	m := make(map[string]any, count)
	t.ForEach(func(k, v lua.LValue) {
		m[k.String()] = goValueSeen(v, seen)
	})
	return m
}

// luaValue converts plain Go data to a Lua value. Values without a
// natural Lua shape are wrapped in userdata so scripts can still pass
// them back to the host unchanged.
func luaValue(L *lua.LState, v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case []byte:
		return lua.LString(val)
	case []any:
		t := L.NewTable()
		for i, e := range val {
			t.RawSetInt(i+1, luaValue(L, e))
		}
		return t
	case []string:
		t := L.NewTable()
		for i, e := range val {
			t.RawSetInt(i+1, lua.LString(e))
		}
		return t
	case map[string]any:
		t := L.NewTable()
		for k, e := range val {
			t.RawSetString(k, luaValue(L, e))
		}
		return t
	case lua.LValue:
		return val
	default:
		ud := L.NewUserData()
		ud.Value = v
		return ud
	}
}

// callLua runs a Lua function with the given arguments and returns its
// first result.
func callLua(L *lua.LState, fn *lua.LFunction, args ...lua.LValue) (lua.LValue, error) {
	L.Push(fn)
	for _, a := range args {
		L.Push(a)
	}
	if err := L.PCall(len(args), 1, nil); err != nil {
		return lua.LNil, err
	}
	ret := L.Get(-1)
	L.Pop(1)
	return ret, nil
}

// blockRequested interprets a callback's return value: boolean true or
// the string "block" asks the host to swallow the event.
func blockRequested(ret lua.LValue) bool {
	switch v := ret.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LString:
		return string(v) == "block"
	default:
		return false
	}
}

func tblString(t *lua.LTable, key string) (string, bool) {
	if s, ok := t.RawGetString(key).(lua.LString); ok {
		return string(s), true
	}
	return "", false
}

func tblBool(t *lua.LTable, key string) (bool, bool) {
	if b, ok := t.RawGetString(key).(lua.LBool); ok {
		return bool(b), true
	}
	return false, false
}

func tblInt(t *lua.LTable, key string) (int, bool) {
	if n, ok := t.RawGetString(key).(lua.LNumber); ok {
		return int(n), true
	}
	return 0, false
}

func tblFunc(t *lua.LTable, key string) (*lua.LFunction, bool) {
	if f, ok := t.RawGetString(key).(*lua.LFunction); ok {
		return f, true
	}
	return nil, false
}

func tblTable(t *lua.LTable, key string) (*lua.LTable, bool) {
	if tt, ok := t.RawGetString(key).(*lua.LTable); ok {
		return tt, true
	}
	return nil, false
}
