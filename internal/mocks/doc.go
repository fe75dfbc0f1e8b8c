package mocks

//go:generate mockgen -destination=mock_qr_generator.go -package=mocks appredirect/internal/app QRGenerator
