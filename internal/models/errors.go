package models

import "errors"

// ErrAlreadyExists возвращается хранилищем при нарушении уникальности
// (email или номер документа уже заняты). Отсутствие записи ошибкой
// не является и моделируется нулевым значением, а не sentinel‑ошибкой.
var ErrAlreadyExists = errors.New("already exists")
