package varints

import (
	"encoding/binary"
)

// Dec64 вычитывает кодированное в varint знаковое 64-битное значение из
// буфера. Параметр limit задаёт бюджет вычитки — количество байтов буфера
// доступных данному вызову, от 1 до binary.MaxVarintLen64. Большие значения
// урезаются до binary.MaxVarintLen64, кроме того бюджет не может превышать
// длину самого буфера.
//
// Возвращаемые значения:
//
//   - Успех: значение, остаток буфера сразу за терминальным байтом, nil.
//   - Кодировка требует более десяти байтов: нулевое значение остатка
//     и ошибка ErrorOverlong. Повторять вычитку бессмысленно.
//   - Бюджет исчерпан, а байт без флага продолжения так и не встретился:
//     нулевое значение остатка и ошибка для которой IsIncomplete(err) == true.
//     При этом возвращаемое значение детерминировано — вычитанные младшие
//     группы дополнены сверху единичными битами, т.е. v | (-1 << (n*7)) для
//     n фактически осмотренных байтов. Такое значение пригодно лишь для
//     диагностики и повторной вычитки с большим бюджетом.
//
// Функция чистая, не аллоцирует и не удерживает буфер.
func Dec64(buf []byte, limit int) (int64, []byte, error) {
	if limit > binary.MaxVarintLen64 {
		limit = binary.MaxVarintLen64
	}
	if limit > len(buf) {
		limit = len(buf)
	}

	var x uint64
	for i := 0; i < limit; i++ {
		b := buf[i]

		// Сдвиг на 63 для десятой группы сам по себе оставляет от её
		// полезной нагрузки лишь младший бит, остальные биты законно
		// теряются — неканонические кодировки допустимы.
		x |= uint64(b&0x7f) << (i * 7)
		if b < 0x80 {
			return int64(x), buf[i+1:], nil
		}
	}

	if limit == binary.MaxVarintLen64 {
		// Флаг продолжения у десятого байта, одиннадцатой группы
		// в формате не существует.
		return int64(x), nil, ErrorOverlong
	}

	return int64(x) | int64(-1)<<(limit*7), nil, errorIncomplete{limit: limit}
}

// Dec32 вычитывает кодированное в varint знаковое 32-битное значение.
// Контракт полностью повторяет Dec64: накопление всегда идёт с 64-битной
// точностью и лишь итог обрезается до младших 32 бит, поэтому группы
// с пятой по девятую вычитываются синтаксически (продвижение по буферу,
// контроль десятибайтного потолка), но на значение не влияют.
func Dec32(buf []byte, limit int) (int32, []byte, error) {
	v, rest, err := Dec64(buf, limit)
	return int32(v), rest, err
}
