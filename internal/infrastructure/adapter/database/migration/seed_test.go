package migration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedFixture = `
users:
  - id: 1
    username: payer1
    fullName: Sara Ahmadi
    email: sara@example.com
    balance: "60000000.00"
  - id: 2
    username: payer2
    fullName: Reza Karimi
    email: reza@example.com
    balance: "150"
students:
  - studentId: "40112345"
    fullName: Ali Ahmadi
    tuition: "25000000.00"
    academicYear: 2024-2025
    semester: "2"
    dueDate: "2025-04-15"
  - studentId: "40199999"
    fullName: Paid Student
    tuition: "100"
    isPaid: true
`

func newSeeder(t *testing.T) (*Seeder, *MigrationManager) {
	t.Helper()
	db := openTestDB(t)
	clock := timeprovider.NewManualTimeProvider(migrationStart)
	log := logger.NewNoopLogger()

	manager := NewMigrationManagerWithTimeProvider(db, log, clock)
	require.NoError(t, manager.MigrateAll(context.Background()))
	return NewSeeder(db, log, clock), manager
}

func TestParseSeed(t *testing.T) {
	data, err := ParseSeed([]byte(seedFixture))
	require.NoError(t, err)

	require.Len(t, data.Users, 2)
	require.Len(t, data.Students, 2)
	assert.Equal(t, "sara@example.com", data.Users[0].Email)
	assert.Equal(t, "2025-04-15", data.Students[0].DueDate)
	assert.True(t, data.Students[1].IsPaid)

	_, err = ParseSeed([]byte("users: [unclosed"))
	assert.ErrorContains(t, err, "parsing seed file")
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedFixture), 0o600))

	data, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Len(t, data.Users, 2)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading seed file")
}

func TestSeederApply(t *testing.T) {
	seeder, _ := newSeeder(t)
	ctx := context.Background()

	data, err := ParseSeed([]byte(seedFixture))
	require.NoError(t, err)

	result, err := seeder.Apply(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.UsersCreated)
	assert.Equal(t, int64(2), result.StudentsCreated)

	var user model.User
	require.NoError(t, seeder.db.First(&user, 2).Error)
	assert.Equal(t, int64(15000), user.Balance)
	assert.True(t, user.IsActive)

	var student model.Student
	require.NoError(t, seeder.db.First(&student, "student_id = ?", "40112345").Error)
	assert.Equal(t, int64(2500000000), student.TuitionAmount)
	require.NotNil(t, student.DueDate)
	assert.Equal(t, "2025-04-15", student.DueDate.Format("2006-01-02"))

	t.Run("Reapplying leaves existing rows alone", func(t *testing.T) {
		require.NoError(t, seeder.db.Model(&model.User{}).Where("id = ?", 2).Update("balance", 1).Error)

		again, err := seeder.Apply(ctx, data)
		require.NoError(t, err)
		assert.Equal(t, SeedResult{}, again)

		var reloaded model.User
		require.NoError(t, seeder.db.First(&reloaded, 2).Error)
		assert.Equal(t, int64(1), reloaded.Balance)
	})
}

func TestSeederRejectsBadFixtures(t *testing.T) {
	seeder, _ := newSeeder(t)
	ctx := context.Background()

	testCases := []struct {
		name    string
		data    *SeedData
		wantErr error
		wantMsg string
	}{
		{
			name:    "Zero user id",
			data:    &SeedData{Users: []SeedUser{{Email: "x@example.com", Balance: "1"}}},
			wantMsg: "id must be positive",
		},
		{
			name:    "Bad balance",
			data:    &SeedData{Users: []SeedUser{{ID: 9, Balance: "1.234"}}},
			wantErr: errs.ErrInvalidAmount,
		},
		{
			name:    "Blank student",
			data:    &SeedData{Students: []SeedStudent{{Tuition: "1"}}},
			wantErr: errs.ErrInvalidStudentID,
		},
		{
			name:    "Bad due date",
			data:    &SeedData{Students: []SeedStudent{{StudentID: "S1", Tuition: "1", DueDate: "15/04/2025"}}},
			wantMsg: "bad dueDate",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := seeder.Apply(ctx, tc.data)

			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			if tc.wantMsg != "" {
				assert.ErrorContains(t, err, tc.wantMsg)
			}
			assert.Equal(t, SeedResult{}, result)
		})
	}

	var count int64
	require.NoError(t, seeder.db.Model(&model.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
