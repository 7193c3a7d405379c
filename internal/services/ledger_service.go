package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finabiz/internal/errors"
	"finabiz/internal/models"
	"finabiz/internal/pagination"
)

// ledgerService handles expense and income bookkeeping.
type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db}
}

// CreateExpense records a new expense for a user. A category, when given,
// must exist in the catalog.
func (s *ledgerService) CreateExpense(
	userID uint,
	amount decimal.Decimal,
	paymentMethod string,
	date time.Time,
	categoryID *uint,
	note *string,
) (*models.Expense, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Amount must be positive")
	}
	if paymentMethod == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Payment method is required")
	}

	if categoryID != nil {
		var category models.Category
		if err := s.db.First(&category, *categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	expense := &models.Expense{
		UserID:        userID,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Date:          date,
		CategoryID:    categoryID,
		Note:          note,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetUserExpenses returns a paginated list of a user's expenses, most recent first.
func (s *ledgerService) GetUserExpenses(userID uint, page pagination.PageRequest, filter LedgerFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("usuario_id = ?", userID)
	base = applyLedgerFilter(base, filter)
	if filter.CategoryID != nil {
		base = base.Where("categoria_id = ?", *filter.CategoryID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Preload("Category").
		Order("fecha DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// CreateIncome records a new income for a user.
func (s *ledgerService) CreateIncome(
	userID uint,
	amount decimal.Decimal,
	paymentMethod string,
	date time.Time,
	note *string,
) (*models.Income, error) {
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Amount must be positive")
	}
	if paymentMethod == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "Payment method is required")
	}

	income := &models.Income{
		UserID:        userID,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Date:          date,
		Note:          note,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return income, nil
}

// GetUserIncomes returns a paginated list of a user's incomes, most recent first.
func (s *ledgerService) GetUserIncomes(userID uint, page pagination.PageRequest, filter LedgerFilter) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	base := s.db.Model(&models.Income{}).Where("usuario_id = ?", userID)
	base = applyLedgerFilter(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := base.Order("fecha DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ListCategories returns the full category catalog.
func (s *ledgerService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// applyLedgerFilter narrows a ledger query by the optional date range.
func applyLedgerFilter(base *gorm.DB, filter LedgerFilter) *gorm.DB {
	if filter.FromDate != nil {
		base = base.Where("fecha >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("fecha <= ?", *filter.ToDate)
	}
	return base
}
