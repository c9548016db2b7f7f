package cli

import "testing"

func TestParseScaffoldArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		structure string
		scope     string
		wantErr   bool
	}{
		{name: "structure only", args: []string{"user"}, structure: "user"},
		{name: "with scope", args: []string{"user", "scope:admin"}, structure: "user", scope: "admin"},
		{name: "scope first", args: []string{"scope:admin", "user"}, structure: "user", scope: "admin"},
		{name: "empty scope", args: []string{"user", "scope:"}, wantErr: true},
		{name: "scope only", args: []string{"scope:admin"}, wantErr: true},
		{name: "two structures", args: []string{"user", "post"}, wantErr: true},
		{name: "two scopes", args: []string{"scope:a", "scope:b"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := parseScaffoldArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", req)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Structure != tt.structure {
				t.Errorf("Structure = %q, want %q", req.Structure, tt.structure)
			}
			if req.RouteScope != tt.scope {
				t.Errorf("RouteScope = %q, want %q", req.RouteScope, tt.scope)
			}
		})
	}
}
