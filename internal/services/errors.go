package services

import "errors"

// Таксономия доменных ошибок. Обработчики сопоставляют их с HTTP-статусами
// через errors.Is; всё, что не попало в список, считается внутренней ошибкой.
var (
	ErrValidation         = errors.New("ошибка валидации")
	ErrNotFound           = errors.New("не найдено")
	ErrForbidden          = errors.New("доступ запрещён")
	ErrAlreadyPublished   = errors.New("пост уже опубликован")
	ErrUsernameTaken      = errors.New("имя пользователя уже занято")
	ErrEmailTaken         = errors.New("адрес электронной почты уже зарегистрирован")
	ErrInvalidCredentials = errors.New("неверный логин или пароль")
)
