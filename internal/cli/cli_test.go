package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/learning/internal/auth"
	"github.com/mrlokans/learning/internal/config"
	"github.com/mrlokans/learning/internal/seed"
)

type command interface {
	ParseFlags(args []string) error
	SetOutput(w io.Writer)
	Run() error
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Database: config.Database{
			Path:     filepath.Join(t.TempDir(), "cli.db"),
			LogLevel: "silent",
		},
		Seed: config.Seed{File: filepath.Join("..", "..", "fixtures", "catalog.yaml")},
	}
}

// run parses args into cmd, sends its output to out and runs it.
func run(t *testing.T, cmd command, out *bytes.Buffer, args ...string) error {
	t.Helper()
	require.NoError(t, cmd.ParseFlags(args))
	cmd.SetOutput(out)
	return cmd.Run()
}

func seeded(t *testing.T) *config.Config {
	t.Helper()
	cfg := testConfig(t)
	var out bytes.Buffer
	require.NoError(t, run(t, NewSeedCommand(cfg), &out))
	assert.Contains(t, out.String(), "courses: 3 created")
	return cfg
}

func TestInitCommand(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	require.NoError(t, run(t, NewInitCommand(cfg), &out))
	assert.FileExists(t, cfg.Database.Path)
	assert.Contains(t, out.String(), "Database ready")
	assert.Contains(t, out.String(), "(0 users)")
}

func TestSeedCommand_DryRun(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	require.NoError(t, run(t, NewSeedCommand(cfg), &out, "-dry-run"))
	assert.Contains(t, out.String(), "2 teachers, 3 courses")
	assert.NoFileExists(t, cfg.Database.Path)
}

func TestSeedCommand_RequiresFile(t *testing.T) {
	cmd := NewSeedCommand(testConfig(t))
	assert.Error(t, cmd.ParseFlags([]string{"-file", ""}))
}

func TestSeedCommand_InvalidFixture(t *testing.T) {
	cfg := testConfig(t)
	cfg.Seed.File = filepath.Join(t.TempDir(), "missing.yaml")
	var out bytes.Buffer

	assert.Error(t, run(t, NewSeedCommand(cfg), &out))
}

func TestRegisterAndLogin(t *testing.T) {
	cfg := seeded(t)
	var out bytes.Buffer

	require.NoError(t, run(t, NewRegisterCommand(cfg), &out,
		"-first", "Ivan", "-last", "Petrov", "-email", "ivan@example.com", "-password", "secret"))
	assert.Contains(t, out.String(), "Registered Ivan Petrov as student")

	out.Reset()
	err := run(t, NewRegisterCommand(cfg), &out,
		"-first", "Ivan", "-last", "Petrov", "-email", "ivan@example.com", "-password", "secret")
	assert.ErrorIs(t, err, auth.ErrEmailTaken)

	out.Reset()
	require.NoError(t, run(t, NewLoginCommand(cfg), &out, "-email", "ivan@example.com", "-password", "secret"))
	assert.Contains(t, out.String(), "Welcome, Ivan Petrov (student)")
	assert.Contains(t, out.String(), "Courses (3)")
	assert.Contains(t, out.String(), "1. Algebra")

	out.Reset()
	err = run(t, NewLoginCommand(cfg), &out, "-email", "ivan@example.com", "-password", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegisterCommand_MissingFields(t *testing.T) {
	var out bytes.Buffer
	err := run(t, NewRegisterCommand(testConfig(t)), &out, "-email", "a@example.com")
	assert.ErrorIs(t, err, auth.ErrValidation)
}

func TestBrowseCommand(t *testing.T) {
	cfg := seeded(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"courses", nil, []string{"Courses (3)", "Algebra", "Biology", "History of Computing"}},
		{"modules", []string{"-course", "Algebra"}, []string{"Modules of Algebra (2)", "1. Intro to Algebra", "2. Linear Equations"}},
		{"lessons", []string{"-module", "Intro to Algebra"}, []string{"Lessons of Intro to Algebra (2)", "Variables", "Expressions"}},
		{"lesson children", []string{"-lesson", "Variables"}, []string{"Assignments of Variables (1)", "Worksheet 1", "Quizzes of Variables (1)", "Variables check"}},
		{"unknown course", []string{"-course", "nonexistent"}, []string{"Modules of nonexistent (0)", "(none)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(t, NewBrowseCommand(cfg), &out, tt.args...))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestSearchCommand(t *testing.T) {
	cfg := seeded(t)

	var out bytes.Buffer
	require.NoError(t, run(t, NewSearchCommand(cfg), &out, "-module", "Intro"))
	assert.Contains(t, out.String(), "Found 2 records")
	assert.Contains(t, out.String(), "Intro to Algebra")
	assert.Contains(t, out.String(), "Intro to Biology")

	out.Reset()
	require.NoError(t, run(t, NewSearchCommand(cfg), &out, "-course", "Algebra", "-module", "Intro to Algebra", "-json"))
	var records []struct {
		Kind   string         `json:"kind"`
		Record map[string]any `json:"record"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "course", records[0].Kind)
	assert.Equal(t, "Algebra", records[0].Record["title"])
	assert.Equal(t, "module", records[1].Kind)

	out.Reset()
	require.NoError(t, run(t, NewSearchCommand(cfg), &out))
	assert.Contains(t, out.String(), "Found 0 records")
}

func TestSeedCommand_ValidationMessage(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("courses: [{title: A, status: paused}]"), 0o644))
	cfg.Seed.File = path

	var out bytes.Buffer
	err := run(t, NewSeedCommand(cfg), &out)
	assert.ErrorIs(t, err, seed.ErrInvalidFixture)
}

func TestAuditCommand(t *testing.T) {
	cfg := seeded(t)
	var out bytes.Buffer

	require.NoError(t, run(t, NewRegisterCommand(cfg), &out,
		"-first", "Ivan", "-last", "Petrov", "-email", "ivan@example.com", "-password", "secret"))
	_ = run(t, NewLoginCommand(cfg), &out, "-email", "ivan@example.com", "-password", "wrong")

	out.Reset()
	require.NoError(t, run(t, NewAuditCommand(cfg), &out))
	assert.Contains(t, out.String(), "Events (3)")
	assert.Contains(t, out.String(), "seed")
	assert.Contains(t, out.String(), "register")
	assert.Contains(t, out.String(), "error: invalid email or password")

	out.Reset()
	require.NoError(t, run(t, NewAuditCommand(cfg), &out, "-type", "seed"))
	assert.Contains(t, out.String(), "Events (1)")
	assert.Contains(t, out.String(), "courses: 3 created")

	out.Reset()
	require.NoError(t, run(t, NewAuditCommand(cfg), &out, "-prune", "1ns"))
	assert.Contains(t, out.String(), "Pruned 3 events")
	assert.Contains(t, out.String(), "Events (0)")
}

func TestAuditCommand_UnknownType(t *testing.T) {
	cmd := NewAuditCommand(testConfig(t))
	assert.Error(t, cmd.ParseFlags([]string{"-type", "import"}))
}
