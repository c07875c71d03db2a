package schedule

import "testing"

func TestDependencyTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dt   DependencyType
		want string
	}{
		{None, "none"},
		{Resource, "resource"},
		{Order, "order"},
		{Data, "data"},
		{DependencyType(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.dt.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.dt, got, tt.want)
		}
	}
}

func TestAddDependencyOncePerPair(t *testing.T) {
	t.Parallel()

	c := call("b", "write_file", `{}`)
	c.addDependency("a", Resource)
	c.addDependency("a", Data)

	if len(c.DependsOn) != 1 {
		t.Errorf("DependsOn = %v, want single entry", c.DependsOn)
	}
	if c.DependencyTypes["a"] != Resource {
		t.Errorf("type = %v, want first recorded type %v", c.DependencyTypes["a"], Resource)
	}
}
