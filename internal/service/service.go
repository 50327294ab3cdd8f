package service

// Services 集合所有服務實例
type Services struct {
	Calculator *CalculatorService
	Health     *HealthService
}

// NewServices 建立所有服務
func NewServices() *Services {
	return &Services{
		Calculator: NewCalculatorService(),
		Health:     NewHealthService(Version),
	}
}
