package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finabiz/internal/errors"
	"finabiz/internal/pagination"
	"finabiz/internal/services"
)

// dateLayout is the wire format for ledger dates.
const dateLayout = "2006-01-02"

// LedgerHandler handles expense, income, and category catalog requests
type LedgerHandler struct {
	ledgerService services.LedgerServicer
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService services.LedgerServicer) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// CreateExpenseRequest represents the request payload for recording an expense
type CreateExpenseRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required,max=100"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	CategoryID    *uint           `json:"category_id"`
	Note          *string         `json:"note" binding:"omitempty,max=250"`
}

// CreateIncomeRequest represents the request payload for recording an income
type CreateIncomeRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required,max=100"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Note          *string         `json:"note" binding:"omitempty,max=250"`
}

// ListLedgerQuery holds pagination and filter query parameters for ledger listings
type ListLedgerQuery struct {
	pagination.PageRequest
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	CategoryID *uint  `form:"category_id"`
}

// filter converts the parsed query into a service-level filter.
func (q *ListLedgerQuery) filter() services.LedgerFilter {
	var filter services.LedgerFilter
	if q.From != "" {
		from, _ := time.Parse(dateLayout, q.From)
		filter.FromDate = &from
	}
	if q.To != "" {
		to, _ := time.Parse(dateLayout, q.To)
		filter.ToDate = &to
	}
	filter.CategoryID = q.CategoryID
	return filter
}

// CreateExpense records a new expense
// @Summary     Record an expense
// @Description Record a new expense for the authenticated user
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense data"
// @Success     201 {object} map[string]interface{} "Created expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /api/v1/expenses [post]
func (h *LedgerHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	date, _ := time.Parse(dateLayout, req.Date)
	expense, err := h.ledgerService.CreateExpense(userID, req.Amount, req.PaymentMethod, date, req.CategoryID, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// ListExpenses returns the user's expenses
// @Summary     List expenses
// @Description List the authenticated user's expenses, most recent first
// @Tags        ledger
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       from query string false "Start date (YYYY-MM-DD)"
// @Param       to query string false "End date (YYYY-MM-DD)"
// @Param       category_id query int false "Category filter"
// @Success     200 {object} map[string]interface{} "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Router      /api/v1/expenses [get]
func (h *LedgerHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query ListLedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	expenses, err := h.ledgerService.GetUserExpenses(userID, query.PageRequest, query.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// CreateIncome records a new income
// @Summary     Record an income
// @Description Record a new income for the authenticated user
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateIncomeRequest true "Income data"
// @Success     201 {object} map[string]interface{} "Created income"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /api/v1/incomes [post]
func (h *LedgerHandler) CreateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	date, _ := time.Parse(dateLayout, req.Date)
	income, err := h.ledgerService.CreateIncome(userID, req.Amount, req.PaymentMethod, date, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"income": income})
}

// ListIncomes returns the user's incomes
// @Summary     List incomes
// @Description List the authenticated user's incomes, most recent first
// @Tags        ledger
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       from query string false "Start date (YYYY-MM-DD)"
// @Param       to query string false "End date (YYYY-MM-DD)"
// @Success     200 {object} map[string]interface{} "Paginated incomes"
// @Failure     400 {object} ErrorResponse "Invalid query"
// @Router      /api/v1/incomes [get]
func (h *LedgerHandler) ListIncomes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query ListLedgerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	incomes, err := h.ledgerService.GetUserIncomes(userID, query.PageRequest, query.filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, incomes)
}

// ListCategories returns the category catalog
// @Summary     List categories
// @Description List the spending category catalog
// @Tags        ledger
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Category catalog"
// @Router      /api/v1/categories [get]
func (h *LedgerHandler) ListCategories(c *gin.Context) {
	categories, err := h.ledgerService.ListCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
