package migration

import (
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestChainIsContiguousWithPairedDowns(t *testing.T) {
	entries, err := embeddedMigrations.ReadDir(migrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[int]string{}
	downs := map[int]string{}

	for _, entry := range entries {
		name := entry.Name()
		require.True(t, strings.HasSuffix(name, ".up.sql") || strings.HasSuffix(name, ".down.sql"),
			"unexpected migration file %s", name)

		version, err := strconv.Atoi(strings.SplitN(name, "_", 2)[0])
		require.NoError(t, err, "migration %s must start with a numeric version", name)

		if strings.HasSuffix(name, ".up.sql") {
			ups[version] = name
		} else {
			downs[version] = name
		}
	}

	require.Equal(t, len(ups), len(downs), "every up migration needs a down")

	versions := make([]int, 0, len(ups))
	for v := range ups {
		_, ok := downs[v]
		assert.True(t, ok, "missing down for version %d", v)
		versions = append(versions, v)
	}
	sort.Ints(versions)

	for i, v := range versions {
		assert.Equal(t, i+1, v, "versions must be contiguous from 1")
	}
}

func TestUpMigrationsAreGuarded(t *testing.T) {
	entries, err := embeddedMigrations.ReadDir(migrationsDir)
	require.NoError(t, err)

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}
		content, err := embeddedMigrations.ReadFile(migrationsDir + "/" + entry.Name())
		require.NoError(t, err)

		sql := strings.ToUpper(string(content))
		if strings.Contains(sql, "CREATE TABLE") {
			assert.Contains(t, sql, "IF NOT EXISTS",
				"%s creates tables without an existence guard", entry.Name())
		}
	}
}

func TestAutoMigrateBuildsFullSchema(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(conn))

	for _, table := range []string{
		"veterinarians", "owners", "pets", "appointments",
		"medical_records", "vaccines", "vaccination_records", "invoices",
	} {
		assert.True(t, conn.Migrator().HasTable(table), "missing table %s", table)
	}

	// Re-running must be a no-op, not an error.
	require.NoError(t, AutoMigrate(conn))
}
