//nolint:testpackage // using package name 'climake' to access unexported fields for testing
package climake

import (
	"errors"
	"testing"
)

// TestErrWellFormedTree tests that a valid spec tree reports no build error
func TestErrWellFormedTree(t *testing.T) {
	cli := New("test", "Test application").
		AddArg(NewArgument("Verbose output", []rune{'v'}, []string{"verbose"}, InputNone)).
		AddSubcommand(NewSubcommand("build", "Build the project").
			AddArg(NewArgument("Output file", []rune{'o'}, nil, InputPath)))

	if err := cli.Err(); err != nil {
		t.Fatalf("Expected no build error, got %v", err)
	}
}

// TestErrNoCalls tests that an argument without calls is rejected at attach
func TestErrNoCalls(t *testing.T) {
	cli := New("test", "Test application").
		AddArg(NewArgument("Orphan", nil, nil, InputNone))

	var buildErr *BuildError
	if !errors.As(cli.Err(), &buildErr) {
		t.Fatalf("Expected BuildError, got %v", cli.Err())
	}
	if buildErr.Type != ErrorTypeNoCalls {
		t.Errorf("Expected no_calls, got %s", buildErr.Type)
	}
}

// TestErrDuplicateCall tests that two siblings cannot share a call
func TestErrDuplicateCall(t *testing.T) {
	cli := New("test", "Test application").
		AddArg(NewArgument("First", []rune{'a'}, nil, InputNone)).
		AddArg(NewArgument("Second", []rune{'a'}, nil, InputNone))

	var buildErr *BuildError
	if !errors.As(cli.Err(), &buildErr) {
		t.Fatalf("Expected BuildError, got %v", cli.Err())
	}
	if buildErr.Type != ErrorTypeDuplicateCall {
		t.Errorf("Expected duplicate_call, got %s", buildErr.Type)
	}
	if buildErr.Call != "-a" {
		t.Errorf("Expected offending call -a, got %q", buildErr.Call)
	}
}

// TestDuplicateCallAcrossScopesAllowed tests that scopes are independent call namespaces
func TestDuplicateCallAcrossScopesAllowed(t *testing.T) {
	cli := New("test", "Test application").
		AddArg(NewArgument("Root verbose", []rune{'v'}, nil, InputNone)).
		AddSubcommand(NewSubcommand("build", "Build the project").
			AddArg(NewArgument("Build verbose", []rune{'v'}, nil, InputNone)))

	if err := cli.Err(); err != nil {
		t.Fatalf("Expected no build error for same call in different scopes, got %v", err)
	}
}

// TestErrInvalidLongCall tests rejection of malformed long call names
func TestErrInvalidLongCall(t *testing.T) {
	tests := []struct {
		name string
		long string
	}{
		{"empty", ""},
		{"leading hyphen", "-bad"},
		{"embedded equals", "bad=name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := New("test", "Test application").
				AddArg(NewArgument("Bad", nil, []string{tt.long}, InputNone))

			var buildErr *BuildError
			if !errors.As(cli.Err(), &buildErr) {
				t.Fatalf("Expected BuildError, got %v", cli.Err())
			}
			if buildErr.Type != ErrorTypeInvalidCall {
				t.Errorf("Expected invalid_call, got %s", buildErr.Type)
			}
		})
	}
}

// TestErrDuplicateSubcommandName tests that sibling subcommands need distinct names
func TestErrDuplicateSubcommandName(t *testing.T) {
	cli := New("test", "Test application").
		AddSubcommand(NewSubcommand("build", "First")).
		AddSubcommand(NewSubcommand("build", "Second"))

	var buildErr *BuildError
	if !errors.As(cli.Err(), &buildErr) {
		t.Fatalf("Expected BuildError, got %v", cli.Err())
	}
	if buildErr.Type != ErrorTypeDuplicateName {
		t.Errorf("Expected duplicate_name, got %s", buildErr.Type)
	}
}

// TestErrEmptySubcommandName tests rejection of a nameless subcommand
func TestErrEmptySubcommandName(t *testing.T) {
	cli := New("test", "Test application").
		AddSubcommand(NewSubcommand("", "Nameless"))

	var buildErr *BuildError
	if !errors.As(cli.Err(), &buildErr) {
		t.Fatalf("Expected BuildError, got %v", cli.Err())
	}
	if buildErr.Type != ErrorTypeInvalidName {
		t.Errorf("Expected invalid_name, got %s", buildErr.Type)
	}
}

// TestErrSurfacesNestedFailure tests that Err walks into subcommand subtrees
func TestErrSurfacesNestedFailure(t *testing.T) {
	broken := NewSubcommand("build", "Build the project").
		AddArg(NewArgument("Orphan", nil, nil, InputNone))
	cli := New("test", "Test application").AddSubcommand(broken)

	var buildErr *BuildError
	if !errors.As(cli.Err(), &buildErr) {
		t.Fatalf("Expected nested BuildError to surface, got %v", cli.Err())
	}
	if buildErr.Type != ErrorTypeNoCalls {
		t.Errorf("Expected no_calls, got %s", buildErr.Type)
	}
}

// TestErrKeepsFirstFailure tests that the first recorded error wins
func TestErrKeepsFirstFailure(t *testing.T) {
	cli := New("test", "Test application").
		AddArg(NewArgument("Orphan", nil, nil, InputNone)).
		AddSubcommand(NewSubcommand("", "Nameless"))

	var buildErr *BuildError
	if !errors.As(cli.Err(), &buildErr) {
		t.Fatalf("Expected BuildError, got %v", cli.Err())
	}
	if buildErr.Type != ErrorTypeNoCalls {
		t.Errorf("Expected the first failure (no_calls), got %s", buildErr.Type)
	}
}

// TestProgramStemOverride tests the usage-line stem override
func TestProgramStemOverride(t *testing.T) {
	cli := New("test", "Test application").ProgramName("custom-name")
	if got := cli.programStem(); got != "custom-name" {
		t.Errorf("Expected stem 'custom-name', got %q", got)
	}
}

// TestAccessors tests the trivial read accessors
func TestAccessors(t *testing.T) {
	arg := NewArgument("Verbose output", []rune{'v'}, nil, InputNone)
	sub := NewSubcommand("build", "Build the project")
	cli := New("test", "Test application").AddArg(arg).AddSubcommand(sub)

	if cli.Name() != "test" || cli.Description() != "Test application" {
		t.Error("Expected constructor values back from accessors")
	}
	if len(cli.Arguments()) != 1 || cli.Arguments()[0] != arg {
		t.Error("Expected the attached argument back")
	}
	if len(cli.Subcommands()) != 1 || cli.Subcommands()[0] != sub {
		t.Error("Expected the attached subcommand back")
	}
}
