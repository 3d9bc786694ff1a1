package salarysliperrors

import (
	"go-salaryslip/internal/shared/apperror"
	"net/http"
)

var (
	ErrSalarySlipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary slip not found",
		http.StatusNotFound,
	)
	ErrInvalidSalarySlipID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary slip ID",
		http.StatusBadRequest,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields",
		http.StatusBadRequest,
	)
)

const DeletedMessage = "Salary slip deleted successfully"
