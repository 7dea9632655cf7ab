package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"

	"github.com/mmynk/wedplan/internal/auth"
	"github.com/mmynk/wedplan/internal/dashboard"
	"github.com/mmynk/wedplan/internal/models"
	"github.com/mmynk/wedplan/internal/secrets"
	"github.com/mmynk/wedplan/internal/storage/sqlstore"
)

type fixture struct {
	configPath string
	dbPath     string
	base       string
	castle     string
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newFixture writes a config pointing at a seeded temp database.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	gokeyring.MockInit()

	prevNow := now
	now = func() time.Time { return date(2026, 10, 17) }
	t.Cleanup(func() { now = prevNow })

	dir := t.TempDir()
	f := &fixture{
		configPath: filepath.Join(dir, "wedplan.yaml"),
		dbPath:     filepath.Join(dir, "wedplan.db"),
	}
	cfg := "db:\n  path: " + f.dbPath + "\nproject:\n  name: Test wedding\n"
	require.NoError(t, os.WriteFile(f.configPath, []byte(cfg), 0o600))

	store, err := sqlstore.New(f.dbPath)
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	base := &models.BudgetScenario{Name: "Base", IsActive: true}
	castle := &models.BudgetScenario{Name: "Castle"}
	require.NoError(t, store.CreateScenario(ctx, base))
	require.NoError(t, store.CreateScenario(ctx, castle))
	f.base, f.castle = base.ID, castle.ID

	for _, e := range []*models.Expense{
		{ScenarioID: base.ID, Title: "Hall", Category: "venue", Amount: decimal.RequireFromString("1000"), Status: models.ExpensePaid},
		{ScenarioID: base.ID, Title: "Band", Category: "music", Amount: decimal.RequireFromString("250.50"), Status: models.ExpensePlanned},
		{ScenarioID: castle.ID, Title: "Castle", Category: "venue", Amount: decimal.RequireFromString("5000"), Status: models.ExpensePlanned},
	} {
		require.NoError(t, store.CreateExpense(ctx, e))
	}

	due := date(2026, 9, 1)
	for _, task := range []*models.Task{
		{Title: "Book venue", Status: models.TaskDone, Priority: models.PriorityHigh, AssignedTo: models.AssigneeBoth},
		{Title: "Send invites", Status: models.TaskTodo, Priority: models.PriorityMedium, AssignedTo: models.AssigneeMe, DueDate: &due},
	} {
		require.NoError(t, store.CreateTask(ctx, task))
	}

	for _, g := range []*models.Guest{
		{FirstName: "Zofia", Side: models.SideBride, RSVP: models.RSVPYes, HasCompanion: true},
		{FirstName: "Adam", Side: models.SideGroom, RSVP: models.RSVPSent, HasCompanion: true},
		{FirstName: "Marta", Side: models.SideBride, RSVP: models.RSVPNotSent},
	} {
		require.NoError(t, store.CreateGuest(ctx, g))
	}

	require.NoError(t, store.CreateVendor(ctx, &models.Vendor{Name: "Studio Foto", Category: "photo", Status: models.VendorBooked}))
	require.NoError(t, store.CreateTimelineEvent(ctx, &models.TimelineEvent{Title: "Engagement", EventDate: date(2026, 1, 1)}))
	require.NoError(t, store.CreateTimelineEvent(ctx, &models.TimelineEvent{Title: "Ceremony", EventDate: date(2027, 6, 12), StartTime: "15:00"}))
	require.NoError(t, store.CreateNote(ctx, &models.Note{Title: "Songs", Content: "First dance", Tags: []string{"music"}}))

	return f
}

// run executes the CLI with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "wedplan", cmd.Use)

	for _, path := range [][]string{
		{"serve"}, {"stats"}, {"hash-password"},
		{"scenario", "list"}, {"scenario", "activate"}, {"scenario", "clone"},
		{"secret", "set"}, {"secret", "clear"},
	} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err, "command %v should exist", path)
		assert.Equal(t, path[len(path)-1], sub.Name())
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, "", "--format", "xml", "hash-password", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestStatsText(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, "", "--config", f.configPath, "stats")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "stats", []byte(out))
}

func TestStatsJSONAllScenarios(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, "", "--config", f.configPath, "--format", "json", "stats", "--all")
	require.NoError(t, err)

	var st dashboard.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.True(t, st.Budget.Total.Equal(decimal.RequireFromString("6250.50")), "total %s", st.Budget.Total)
	assert.Equal(t, 3, st.Budget.Count)
	assert.Equal(t, 5, st.Guests.HeadCount)
	assert.True(t, st.Computed.Equal(date(2026, 10, 17)), "computedAt %v", st.Computed)
}

func TestStatsForScenario(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, "", "--config", f.configPath, "stats", "--scenario", f.castle)
	require.NoError(t, err)
	assert.Contains(t, out, "Budget:   5000.00 total, 0.00 paid, 5000.00 remaining (1 expenses)")
}

func TestScenarioCommands(t *testing.T) {
	f := newFixture(t)

	out, err := run(t, "", "--config", f.configPath, "scenario", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ACTIVE")
	assert.Contains(t, out, f.base)
	assert.Contains(t, out, "1250.50")

	out, err = run(t, "", "--config", f.configPath, "scenario", "activate", f.castle)
	require.NoError(t, err)
	assert.Equal(t, "Activated \"Castle\"\n", out)

	out, err = run(t, "", "--config", f.configPath, "scenario", "clone", f.base)
	require.NoError(t, err)
	assert.Contains(t, out, `Created "Base (copy)"`)
	assert.Contains(t, out, "with 2 expenses")

	store, err := sqlstore.New(f.dbPath)
	require.NoError(t, err)
	defer store.Close()

	active, err := store.GetActiveScenario(context.Background())
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, f.castle, active.ID)

	scenarios, err := store.ListScenarios(context.Background())
	require.NoError(t, err)
	assert.Len(t, scenarios, 3)

	_, err = run(t, "", "--config", f.configPath, "scenario", "activate", "missing")
	assert.Error(t, err)
}

func TestSecretCommands(t *testing.T) {
	gokeyring.MockInit()

	_, err := run(t, "", "secret", "set", "token", "abc")
	require.NoError(t, err)
	v, err := secrets.Get(secrets.TokenSecret)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	_, err = run(t, "hunter2\n", "secret", "set", "password")
	require.NoError(t, err)
	hash, err := secrets.Get(secrets.PasswordHash)
	require.NoError(t, err)
	require.True(t, auth.IsBcryptHash(hash))
	verifier, err := auth.NewSecretVerifier(hash)
	require.NoError(t, err)
	assert.NoError(t, verifier.Verify("hunter2"))

	out, err := run(t, "", "secret", "clear", "token")
	require.NoError(t, err)
	assert.Equal(t, "Cleared token\n", out)
	_, err = secrets.Get(secrets.TokenSecret)
	assert.ErrorIs(t, err, secrets.ErrNotFound)

	_, err = run(t, "", "secret", "clear", "token")
	assert.NoError(t, err)

	_, err = run(t, "", "secret", "set", "apikey", "x")
	assert.Error(t, err)
}

func TestSecretSetGeneratesToken(t *testing.T) {
	gokeyring.MockInit()

	_, err := run(t, "", "secret", "set", "token")
	require.NoError(t, err)
	v, err := secrets.Get(secrets.TokenSecret)
	require.NoError(t, err)
	assert.Len(t, v, 64)
}

func TestHashPassword(t *testing.T) {
	out, err := run(t, "", "hash-password", "letmein")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	require.True(t, auth.IsBcryptHash(hash))
	verifier, err := auth.NewSecretVerifier(hash)
	require.NoError(t, err)
	assert.NoError(t, verifier.Verify("letmein"))

	out, err = run(t, "from stdin\n", "hash-password")
	require.NoError(t, err)
	verifier, err = auth.NewSecretVerifier(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.NoError(t, verifier.Verify("from stdin"))
}

func TestServeLogsStoreFailureToFile(t *testing.T) {
	gokeyring.MockInit()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	logPath := filepath.Join(dir, "wedplan.log")
	configPath := filepath.Join(dir, "wedplan.yaml")
	cfg := "db:\n  path: " + filepath.Join(blocker, "wedplan.db") + "\nlog:\n  file: " + logPath + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(cfg), 0o600))

	_, err := run(t, "", "--config", configPath, "serve")
	require.Error(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Opening storage"`)
	assert.Contains(t, string(data), `"msg":"Failed to open storage"`)
}
