//go:generate mockgen -source=../stock_repository.go  -destination=./mock_stock_repository.go  -package=mocks
//go:generate mockgen -source=../dealer_repository.go -destination=./mock_dealer_repository.go -package=mocks
//go:generate mockgen -source=../marketplace.go       -destination=./mock_marketplace.go       -package=mocks
//go:generate mockgen -source=../token_source.go      -destination=./mock_token_source.go      -package=mocks
//go:generate mockgen -source=../identity_resolver.go -destination=./mock_identity_resolver.go -package=mocks
//go:generate mockgen -source=../validator.go         -destination=./mock_validator.go         -package=mocks
//go:generate mockgen -source=../publisher.go         -destination=./mock_publisher.go         -package=mocks
//go:generate mockgen -source=../scoped_cache.go      -destination=./mock_scoped_cache.go      -package=mocks
//go:generate mockgen -source=../stock_operations.go  -destination=./mock_stock_operations.go  -package=mocks

package mocks
