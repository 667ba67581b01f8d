//nolint:testpackage // using package name 'climake' to access unexported fields for testing
package climake

import (
	"errors"
	"strings"
	"testing"
)

// TestSubcommandChaining tests the fluent member builders
func TestSubcommandChaining(t *testing.T) {
	sub := NewSubcommand("remote", "Manage remotes").
		AddArg(NewArgument("Verbose output", []rune{'v'}, nil, InputNone)).
		AddArgs(
			NewArgument("Remote name", []rune{'n'}, nil, InputText),
			NewArgument("Remote URL", []rune{'u'}, nil, InputText),
		).
		AddSubcommand(NewSubcommand("add", "Add a remote")).
		AddSubcommands(
			NewSubcommand("remove", "Remove a remote"),
			NewSubcommand("list", "List remotes"),
		)

	if len(sub.Arguments) != 3 {
		t.Errorf("Expected 3 arguments, got %d", len(sub.Arguments))
	}
	if len(sub.Subcommands) != 3 {
		t.Errorf("Expected 3 subcommands, got %d", len(sub.Subcommands))
	}
	if err := sub.Err(); err != nil {
		t.Errorf("Expected no build error, got %v", err)
	}
}

// TestSubcommandErrRecursive tests that Err surfaces failures from deep subtrees
func TestSubcommandErrRecursive(t *testing.T) {
	inner := NewSubcommand("inner", "Innermost").
		AddArg(NewArgument("First", []rune{'x'}, nil, InputNone)).
		AddArg(NewArgument("Second", []rune{'x'}, nil, InputNone))
	outer := NewSubcommand("outer", "Outermost").
		AddSubcommand(NewSubcommand("middle", "In between").AddSubcommand(inner))

	var buildErr *BuildError
	if !errors.As(outer.Err(), &buildErr) {
		t.Fatalf("Expected BuildError from the innermost scope, got %v", outer.Err())
	}
	if buildErr.Type != ErrorTypeDuplicateCall {
		t.Errorf("Expected duplicate_call, got %s", buildErr.Type)
	}
}

// TestSubcommandNameLine tests the rendered entry in the Subcommands section
func TestSubcommandNameLine(t *testing.T) {
	tests := []struct {
		name string
		sub  *Subcommand
		want string
	}{
		{
			name: "with help",
			sub:  NewSubcommand("build", "Build the project"),
			want: "  build — Build the project\n",
		},
		{
			name: "without help",
			sub:  NewSubcommand("build", ""),
			want: "  build — No help provided\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			if err := tt.sub.writeNameLine(&sb, 80, defaultTabbing); err != nil {
				t.Fatalf("writeNameLine failed: %v", err)
			}
			if sb.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, sb.String())
			}
		})
	}
}
