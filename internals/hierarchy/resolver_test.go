package hierarchy

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/constants"
)

// dryRunDB builds a gorm handle over a mocked connection; with DryRun set
// the scope filters render SQL without touching a database.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

type parishRow struct {
	ParishID uuid.UUID
}

func renderParishScope(t *testing.T, p Principal) string {
	t.Helper()
	db := dryRunDB(t)
	r := NewResolver(db)

	var rows []parishRow
	tx := r.ScopeParishes(db.Table("parishes"), p).Find(&rows)
	require.NoError(t, tx.Error)
	return tx.Statement.SQL.String()
}

func TestScopeParishesCommunityFallbackJoin(t *testing.T) {
	communityID := uuid.New()
	sql := renderParishScope(t, Principal{
		ID:          uuid.New(),
		Role:        constants.RoleFaithful,
		CommunityID: &communityID,
	})

	assert.Contains(t, sql, "JOIN communities ON communities.community_parish_id = parishes.parish_id")
	assert.Contains(t, sql, "communities.community_id")
	assert.NotContains(t, sql, "1 = 0")
}

func TestScopeParishesParishClaimWinsOverCommunity(t *testing.T) {
	parishID := uuid.New()
	communityID := uuid.New()
	sql := renderParishScope(t, Principal{
		ID:          uuid.New(),
		Role:        constants.RoleCommunityCoordinator,
		ParishID:    &parishID,
		CommunityID: &communityID,
	})

	assert.Contains(t, sql, "parish_id")
	assert.NotContains(t, sql, "JOIN communities")
}

func TestScopeParishesFailClosed(t *testing.T) {
	// Privileged role missing its scope id, and a faithful with no scope
	// claims at all: both must render an empty-result predicate.
	for _, p := range []Principal{
		{ID: uuid.New(), Role: constants.RoleDiocesanAdmin},
		{ID: uuid.New(), Role: constants.RoleFaithful},
	} {
		sql := renderParishScope(t, p)
		assert.Contains(t, sql, "1 = 0", p.Role)
	}
}

func TestScopeParishesSystemAdminUnfiltered(t *testing.T) {
	sql := renderParishScope(t, Principal{ID: uuid.New(), Role: constants.RoleSystemAdmin})
	assert.NotContains(t, sql, "WHERE")
}
