package service

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"

	"multiplier/internal/models"
)

// ErrOverflow 表示乘積超出 int32 範圍
var ErrOverflow = errors.New("product overflows 32-bit signed integer")

// CalculatorService 提供整數乘法，不保存任何狀態
type CalculatorService struct{}

// NewCalculatorService 創建一個新的 CalculatorService 實例
func NewCalculatorService() *CalculatorService {
	return &CalculatorService{}
}

// Multiply 計算 a*b。乘積無法以 int32 表示時回傳 ErrOverflow，不做環繞。
func (s *CalculatorService) Multiply(a, b int32) (*models.MultiplyResult, error) {
	product := int64(a) * int64(b)
	if product > math.MaxInt32 || product < math.MinInt32 {
		return nil, errors.Wrapf(ErrOverflow, "%d × %d", a, b)
	}

	result := int32(product)
	return &models.MultiplyResult{
		Result:    result,
		Message:   fmt.Sprintf("Successfully multiplied %d and %d", a, b),
		Operation: fmt.Sprintf("%d × %d = %d", a, b, result),
	}, nil
}
