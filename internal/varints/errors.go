package varints

import (
	"fmt"

	"github.com/sirkon/errors"
)

// ErrorOverlong ошибка отдаваемая когда кодировка требует более десяти
// байтов, т.е. получена заведомо некорректная последовательность.
const ErrorOverlong errors.Const = "varint encoding needs more than ten bytes"

// IsIncomplete такая ошибка указывает на то, что в рамках данного бюджета
// байтов значение не уместилось, но вычитку можно повторить когда байтов
// станет больше.
func IsIncomplete(err error) bool {
	_, ok := err.(errorIncomplete)
	return ok
}

type errorIncomplete struct {
	limit int
}

func (e errorIncomplete) Error() string {
	return fmt.Sprintf("varint did not terminate within the budget of %d bytes", e.limit)
}
