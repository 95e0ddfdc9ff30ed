package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/talohastudios/die-project-finder/internal/analytics"
	"github.com/talohastudios/die-project-finder/internal/catalog"
	"github.com/talohastudios/die-project-finder/internal/quiz/domain"
	"github.com/talohastudios/die-project-finder/internal/results"
	"github.com/talohastudios/die-project-finder/internal/storage"
)

// testDSN builds the test database DSN, skipping the test when no database
// is configured. Set TEST_DB_DSN directly, or the individual
// TEST_DB_HOST/PORT/USER/PASSWORD/NAME variables.
func testDSN(t *testing.T) string {
	t.Helper()

	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		return dsn
	}

	host := os.Getenv("TEST_DB_HOST")
	port := os.Getenv("TEST_DB_PORT")
	user := os.Getenv("TEST_DB_USER")
	password := os.Getenv("TEST_DB_PASSWORD")
	dbname := os.Getenv("TEST_DB_NAME")

	if host == "" || port == "" || user == "" || dbname == "" {
		t.Skip("TEST_DB_DSN or TEST_DB_* environment variables not set, skipping PostgreSQL integration test")
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

// setupTestDB opens both connection flavors: database/sql (lib/pq) for
// seeding and assertions, pgxpool for the repos under test. Migrations run
// first and each test starts from empty tables.
func setupTestDB(t *testing.T) (*pgxpool.Pool, *sql.DB) {
	t.Helper()
	ctx := context.Background()
	dsn := testDSN(t)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	t.Cleanup(func() { db.Close() })

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, storage.RunMigrations(ctx, pool, "../../migrations", zap.NewNop()))

	for _, table := range []string{"saved_results", "analytics_events", "projects", "accuquilt_dies"} {
		_, err := db.Exec("delete from " + table)
		require.NoError(t, err)
	}

	return pool, db
}

func sampleResult() *domain.SavedResult {
	return &domain.SavedResult{
		Email:     "jo@example.com",
		FirstName: "Jo",
		QuizAnswers: domain.QuizAnswers{
			ProjectTypes: []string{"gifts"},
			Mood:         domain.MoodQuick,
		},
		MatchedProjects: []domain.Project{
			{ID: 1, Title: "Scrappy Gift Pouch", Categories: []string{"Gifts"}, TimeEstimate: "4-6 hrs"},
		},
		CrafterType: domain.CrafterType{Title: "Quick Win Queen", Emoji: "⚡", Description: "fast finishes"},
	}
}

func TestResultsRepoRoundTrip(t *testing.T) {
	pool, _ := setupTestDB(t)
	repo := results.NewRepo(pool)
	ctx := context.Background()

	in := sampleResult()
	id, err := repo.Save(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, id, in.UniqueID)
	assert.False(t, in.CreatedAt.IsZero())

	got, err := repo.GetByUniqueID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, in.Email, got.Email)
	assert.Equal(t, in.FirstName, got.FirstName)
	assert.Equal(t, in.QuizAnswers, got.QuizAnswers)
	assert.Equal(t, in.MatchedProjects, got.MatchedProjects)
	assert.Equal(t, in.CrafterType, got.CrafterType)
}

func TestResultsRepoRepeatedSaveMintsNewRecords(t *testing.T) {
	pool, db := setupTestDB(t)
	repo := results.NewRepo(pool)
	ctx := context.Background()

	first, err := repo.Save(ctx, sampleResult())
	require.NoError(t, err)
	second, err := repo.Save(ctx, sampleResult())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	var count int
	require.NoError(t, db.QueryRow("select count(*) from saved_results").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestResultsRepoNotFound(t *testing.T) {
	pool, _ := setupTestDB(t)
	repo := results.NewRepo(pool)

	_, err := repo.GetByUniqueID(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrResultNotFound)
}

func TestCatalogRepoNormalizesLegacyCategory(t *testing.T) {
	pool, db := setupTestDB(t)
	repo := catalog.NewRepo(pool)
	ctx := context.Background()

	_, err := db.Exec(`
insert into projects (title, category, categories, time_estimate, skill_level, machines_required, is_stash_buster)
values
  ('Legacy Runner', 'Gifts, Seasonal', null, '4-6 hrs', 'Beginner', null, false),
  ('Modern Quilt', null, array['Home Decor'], '8-12 hrs', 'Advanced', array['AccuQuilt'], true);
`)
	require.NoError(t, err)

	projects, err := repo.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, []string{"Gifts", "Seasonal"}, projects[0].Categories)
	assert.Nil(t, projects[0].MachinesRequired)
	assert.Equal(t, []string{"Home Decor"}, projects[1].Categories)
	assert.Equal(t, []string{"AccuQuilt"}, projects[1].MachinesRequired)
	assert.True(t, projects[1].IsStashBuster)
}

func TestCatalogRepoListDies(t *testing.T) {
	pool, db := setupTestDB(t)
	repo := catalog.NewRepo(pool)

	_, err := db.Exec(`
insert into accuquilt_dies (name, code) values
  ('Tumbler-3 1/2"', '55037'),
  ('Drunkard''s Path', '55055');
`)
	require.NoError(t, err)

	dies, err := repo.ListDies(context.Background())
	require.NoError(t, err)
	require.Len(t, dies, 2)
	// ordered by name
	assert.Equal(t, "Drunkard's Path", dies[0].Name)
}

func TestAnalyticsRepoRecord(t *testing.T) {
	pool, db := setupTestDB(t)
	repo := analytics.NewRepo(pool)

	err := repo.Record(context.Background(), "quiz_completed", map[string]any{"matches": 3})
	require.NoError(t, err)
	err = repo.Record(context.Background(), "results_saved", nil)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("select count(*) from analytics_events").Scan(&count))
	assert.Equal(t, 2, count)
}
