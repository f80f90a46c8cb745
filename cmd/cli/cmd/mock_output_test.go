package cmd

import "fmt"

type mockOutputInterface struct {
	calls []call
}

type call struct {
	method string
	args   []any
}

func (m *mockOutputInterface) Infof(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Infof", args: []any{fmt.Sprintf(format, a...)}})
}
func (m *mockOutputInterface) Errorf(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Errorf", args: []any{fmt.Sprintf(format, a...)}})
}
func (m *mockOutputInterface) Successf(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Successf", args: []any{fmt.Sprintf(format, a...)}})
}
func (m *mockOutputInterface) Warningf(format string, a ...any) {
	m.calls = append(m.calls, call{method: "Warningf", args: []any{fmt.Sprintf(format, a...)}})
}
func (m *mockOutputInterface) KeyValue(key, value string) {
	m.calls = append(m.calls, call{method: "KeyValue", args: []any{key, value}})
}
func (m *mockOutputInterface) Blank() {
	m.calls = append(m.calls, call{method: "Blank", args: []any{}})
}
func (m *mockOutputInterface) Bold(text string) string {
	return text
}

func (m *mockOutputInterface) has(method string) bool {
	for _, c := range m.calls {
		if c.method == method {
			return true
		}
	}
	return false
}

func (m *mockOutputInterface) message(method string) string {
	for _, c := range m.calls {
		if c.method == method && len(c.args) > 0 {
			if s, ok := c.args[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func (m *mockOutputInterface) keyValue(key string) (string, bool) {
	for _, c := range m.calls {
		if c.method == "KeyValue" && c.args[0] == key {
			return c.args[1].(string), true
		}
	}
	return "", false
}
