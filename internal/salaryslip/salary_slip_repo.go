package salaryslip

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=salary_slip_repo.go -destination=mock/salary_slip_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, slip *SalarySlip) error
	FindAll(ctx context.Context) ([]SalarySlip, error)
	FindByID(ctx context.Context, id string) (*SalarySlip, error)
	// Update applies columns to the row with id in a single statement and
	// returns the post-update row, or nil when no row matched.
	Update(ctx context.Context, id string, columns map[string]any) (*SalarySlip, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, slip *SalarySlip) error {
	return r.db.WithContext(ctx).Create(slip).Error
}

func (r *repository) FindAll(ctx context.Context) ([]SalarySlip, error) {
	var slips []SalarySlip
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Find(&slips).Error
	return slips, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalarySlip, error) {
	var slip SalarySlip
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&slip).Error
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

func (r *repository) Update(ctx context.Context, id string, columns map[string]any) (*SalarySlip, error) {
	if len(columns) == 0 {
		slip, err := r.FindByID(ctx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return slip, err
	}

	var slip SalarySlip
	res := r.db.WithContext(ctx).
		Model(&slip).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(columns)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &slip, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&SalarySlip{}).Error
}
