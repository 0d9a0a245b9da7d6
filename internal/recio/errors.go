package recio

import "fmt"

// IsRecordTooLarge такая ошибка означает, что запись не способна
// поместиться в кадр целиком.
func IsRecordTooLarge(err error) bool {
	_, ok := err.(errorRecordTooLarge)
	return ok
}

type errorRecordTooLarge struct {
	frame int
	rec   []byte
}

func (e errorRecordTooLarge) Error() string {
	return fmt.Sprintf("the record length %d is out of the frame of %d bytes", len(e.rec), e.frame)
}

// ErrorIntegrityCompromised возвращается, если в файле найдена какая-то
// ерунда противоречащая предположениям об его устройстве.
type ErrorIntegrityCompromised struct{}

func (ErrorIntegrityCompromised) Error() string {
	return "record log integrity compromised"
}
