package handlers

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"multiplier/internal/models"
	"multiplier/internal/service"
)

// CalculatorHandler 處理乘法請求
type CalculatorHandler struct {
	calculatorService *service.CalculatorService
	logger            *zap.Logger
}

// NewCalculatorHandler 創建一個新的 CalculatorHandler 實例
func NewCalculatorHandler(calculatorService *service.CalculatorService, logger *zap.Logger) *CalculatorHandler {
	return &CalculatorHandler{calculatorService: calculatorService, logger: logger}
}

// MultiplyURI 是乘法路由的路徑參數，綁定失敗（空值、非整數或超出 int32）時回應 400
type MultiplyURI struct {
	A int32 `uri:"a"`
	B int32 `uri:"b"`
}

// errEmptyOperand 表示路徑參數為空；gin 會把空字串綁定成 0，需要先擋下
var errEmptyOperand = errors.New("empty operand")

func bindOperands(c *gin.Context, uri *MultiplyURI) error {
	if c.Param("a") == "" || c.Param("b") == "" {
		return errEmptyOperand
	}
	return c.ShouldBindUri(uri)
}

// Multiply 處理 GET /api/multiply/:a/:b
func (h *CalculatorHandler) Multiply(c *gin.Context) {
	var uri MultiplyURI
	if err := bindOperands(c, &uri); err != nil {
		h.logger.Debug("invalid multiply operands",
			zap.String("a", c.Param("a")),
			zap.String("b", c.Param("b")),
			zap.Error(err),
		)
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	result, err := h.calculatorService.Multiply(uri.A, uri.B)
	if err != nil {
		if errors.Is(err, service.ErrOverflow) {
			h.logger.Warn("multiplication overflow", zap.Int32("a", uri.A), zap.Int32("b", uri.B))
			c.JSON(http.StatusUnprocessableEntity, models.NewErrorResult("overflow", err.Error()))
			return
		}
		h.logger.Error("multiplication failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.NewErrorResult("internal", "multiplication failed"))
		return
	}

	h.logger.Info("multiplication request",
		zap.Int32("a", uri.A),
		zap.Int32("b", uri.B),
		zap.Int32("result", result.Result),
	)
	c.JSON(http.StatusOK, result)
}
