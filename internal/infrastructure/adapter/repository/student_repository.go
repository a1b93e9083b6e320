package repository

import (
	"context"

	"github.com/amirhossein-jamali/tuition-payment/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tuition-payment/internal/domain/error"
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// StudentRepository implements StudentRepository interface using GORM
type StudentRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewStudentRepository creates a new StudentRepository instance
func NewStudentRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *StudentRepository {
	return &StudentRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *StudentRepository) modelToEntity(studentModel *model.Student) *entity.Student {
	student := entity.RestoreStudent(studentModel.StudentID, studentModel.FullName, studentModel.TuitionAmount, studentModel.IsPaid)
	student.AcademicYear = studentModel.AcademicYear
	student.Semester = studentModel.Semester
	student.DueDate = studentModel.DueDate
	return student
}

func (r *StudentRepository) handleDatabaseError(operation string, err error, studentID string) error {
	return handleDatabaseError(r.logger, r.errorClassifier, operation, err, errs.ErrStudentNotFound, map[string]any{
		"student_id": studentID,
	})
}

// GetByID retrieves a student by student ID
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*entity.Student, error) {
	return r.get(r.db.WithContext(ctx), studentID)
}

// GetByIDForUpdate retrieves a student and row-locks it for the rest of the unit
func (r *StudentRepository) GetByIDForUpdate(ctx context.Context, studentID string) (*entity.Student, error) {
	return r.get(r.db.WithContext(ctx).Clauses(forUpdate()), studentID)
}

func (r *StudentRepository) get(db *gorm.DB, studentID string) (*entity.Student, error) {
	r.logger.Debug("Getting student by ID", map[string]any{
		"student_id": studentID,
	})

	var studentModel model.Student
	if err := db.Where("student_id = ?", studentID).First(&studentModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting student", err, studentID)
	}

	return r.modelToEntity(&studentModel), nil
}

// Create stores a new student
func (r *StudentRepository) Create(ctx context.Context, student *entity.Student) error {
	now := r.timeProvider.Now()
	studentModel := model.Student{
		StudentID:     student.StudentID,
		FullName:      student.FullName,
		TuitionAmount: student.TuitionAmount(),
		IsPaid:        student.IsPaid,
		AcademicYear:  student.AcademicYear,
		Semester:      student.Semester,
		DueDate:       student.DueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := r.db.WithContext(ctx).Create(&studentModel).Error; err != nil {
		return r.handleDatabaseError("creating student", err, student.StudentID)
	}

	r.logger.Info("Student created successfully", map[string]any{
		"student_id": student.StudentID,
		"tuition":    student.GetTuitionAmount(),
	})
	return nil
}

// MarkPaid flips is_paid, guarded so that a second payment cannot slip through
func (r *StudentRepository) MarkPaid(ctx context.Context, studentID string) error {
	result := r.db.WithContext(ctx).Model(&model.Student{}).
		Where("student_id = ? AND is_paid = ?", studentID, false).
		Updates(map[string]any{
			"is_paid":    true,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("marking tuition paid", result.Error, studentID)
	}

	if result.RowsAffected == 0 {
		// Either missing or already paid; tell them apart for the caller.
		if _, err := r.get(r.db.WithContext(ctx), studentID); err != nil {
			return err
		}
		r.logger.Warn("Tuition already paid", map[string]any{
			"student_id": studentID,
		})
		return errs.ErrAlreadyPaid
	}

	r.logger.Info("Tuition marked as paid", map[string]any{
		"student_id": studentID,
	})
	return nil
}
