// Package extmocks моки внешних интерфейсов для тестов.
package extmocks

//go:generate mockgen -package extmocks -destination reader_mock.go -mock_names Reader=ReaderMock io Reader
