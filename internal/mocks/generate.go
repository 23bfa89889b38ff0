package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SportsData --dir ../usecase --output usecase --outpkg usecasemock --filename sports_data_mock.go
