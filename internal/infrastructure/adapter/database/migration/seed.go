package migration

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/model"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedUser is one payer account in the seed fixture
type SeedUser struct {
	ID       uint64 `yaml:"id"`
	Username string `yaml:"username"`
	FullName string `yaml:"fullName"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	Balance  string `yaml:"balance"`
}

// SeedStudent is one student in the seed fixture
type SeedStudent struct {
	StudentID    string `yaml:"studentId"`
	FullName     string `yaml:"fullName"`
	Tuition      string `yaml:"tuition"`
	IsPaid       bool   `yaml:"isPaid"`
	AcademicYear string `yaml:"academicYear"`
	Semester     string `yaml:"semester"`
	DueDate      string `yaml:"dueDate"` // YYYY-MM-DD, optional
}

// SeedData is the parsed fixture file
type SeedData struct {
	Users    []SeedUser    `yaml:"users"`
	Students []SeedStudent `yaml:"students"`
}

// SeedResult counts rows inserted; existing rows are left alone
type SeedResult struct {
	UsersCreated    int64
	StudentsCreated int64
}

// LoadSeedFile reads and parses a YAML fixture
func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return ParseSeed(raw)
}

// ParseSeed parses a YAML fixture
func ParseSeed(raw []byte) (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &data, nil
}

// Seeder inserts fixture rows idempotently
type Seeder struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewSeeder creates a new seeder
func NewSeeder(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Seeder {
	return &Seeder{db: db, logger: logger, timeProvider: timeProvider}
}

// Apply inserts users and students that do not exist yet, in one transaction
func (s *Seeder) Apply(ctx context.Context, data *SeedData) (SeedResult, error) {
	var result SeedResult
	now := s.timeProvider.Now()

	users, err := s.userModels(data.Users, now)
	if err != nil {
		return result, err
	}
	students, err := s.studentModels(data.Students, now)
	if err != nil {
		return result, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ignore := tx.Clauses(clause.OnConflict{DoNothing: true})
		if len(users) > 0 {
			res := ignore.Create(&users)
			if res.Error != nil {
				return fmt.Errorf("seeding users: %w", res.Error)
			}
			result.UsersCreated = res.RowsAffected
		}
		if len(students) > 0 {
			res := ignore.Create(&students)
			if res.Error != nil {
				return fmt.Errorf("seeding students: %w", res.Error)
			}
			result.StudentsCreated = res.RowsAffected
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Seeding failed", map[string]any{"error": err.Error()})
		return SeedResult{}, err
	}

	s.logger.Info("Seed data applied", map[string]any{
		"users_created":    result.UsersCreated,
		"students_created": result.StudentsCreated,
	})
	return result, nil
}

func (s *Seeder) userModels(users []SeedUser, now time.Time) ([]model.User, error) {
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.ID == 0 {
			return nil, fmt.Errorf("seed user %q: id must be positive", u.Email)
		}
		balance, err := entity.ValidateAndConvertAmount(u.Balance)
		if err != nil {
			return nil, fmt.Errorf("seed user %d: %w", u.ID, err)
		}
		out = append(out, model.User{
			ID:        u.ID,
			Username:  u.Username,
			FullName:  u.FullName,
			Phone:     u.Phone,
			Email:     u.Email,
			Balance:   balance,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out, nil
}

func (s *Seeder) studentModels(students []SeedStudent, now time.Time) ([]model.Student, error) {
	out := make([]model.Student, 0, len(students))
	for _, st := range students {
		student, err := entity.NewStudent(st.StudentID, st.FullName, st.Tuition)
		if err != nil {
			return nil, fmt.Errorf("seed student %q: %w", st.StudentID, err)
		}

		var dueDate *time.Time
		if st.DueDate != "" {
			d, err := time.Parse(time.DateOnly, st.DueDate)
			if err != nil {
				return nil, fmt.Errorf("seed student %q: bad dueDate: %w", st.StudentID, err)
			}
			dueDate = &d
		}

		out = append(out, model.Student{
			StudentID:     student.StudentID,
			FullName:      student.FullName,
			TuitionAmount: student.TuitionAmount(),
			IsPaid:        st.IsPaid,
			AcademicYear:  st.AcademicYear,
			Semester:      st.Semester,
			DueDate:       dueDate,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return out, nil
}
