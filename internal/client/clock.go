package client

import "time"

// Timer — отменяемый таймер переподключения.
type Timer interface {
	Stop() bool
}

// Clock абстрагирует время, чтобы тесты могли проматывать его
// синтетически, не дожидаясь настоящих задержек.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// realClock — системные часы по умолчанию.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
